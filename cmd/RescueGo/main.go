//
// RescueGo - a Rescue Chess engine in GO
//
// MIT License
//
// Copyright (c) 2025-2026 The RescueGo Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// RescueGo is the command line driver of the engine core: best move
// search from a FEN, perft, EPD test suites and self play. The UCI
// protocol front-end is a separate program consuming the same core.
package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rescuechess/RescueGo/internal/config"
	"github.com/rescuechess/RescueGo/internal/logging"
	"github.com/rescuechess/RescueGo/internal/movegen"
	"github.com/rescuechess/RescueGo/internal/position"
	"github.com/rescuechess/RescueGo/internal/search"
	"github.com/rescuechess/RescueGo/internal/testsuite"
	"github.com/rescuechess/RescueGo/internal/types"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "position to operate on")
	depth := flag.Int("depth", 0, "search depth limit (0 = configured default)")
	moveTime := flag.Int("movetime", 0, "search time per move in milliseconds (0 = configured default)")
	rescue := flag.Bool("rescue", false, "play the Rescue Chess variant instead of classic chess")
	perftDepth := flag.Int("perft", 0, "run perft on the position to the given depth")
	testSuitePath := flag.String("testsuite", "", "path to a file containing EPD tests")
	testDepth := flag.Int("testdepth", 6, "search depth limit for each test position")
	testTime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	selfPlay := flag.Int("selfplay", 0, "play the given number of plies engine vs engine")
	prof := flag.Bool("profile", false, "write a cpu profile to the working directory")
	flag.Parse()

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
		config.SearchLogLevel = lvl
	}
	log := logging.GetLog()

	gameType := movegen.Classic
	if *rescue {
		gameType = movegen.Rescue
	}

	// perft
	if *perftDepth > 0 {
		pf := movegen.NewPerft()
		for d := 1; d <= *perftDepth; d++ {
			pf.StartPerft(*fen, d, gameType, true)
		}
		return
	}

	// EPD test suite
	if *testSuitePath != "" {
		ts, err := testsuite.NewTestSuite(*testSuitePath, *testDepth,
			time.Duration(*testTime)*time.Millisecond, gameType)
		if err != nil {
			log.Error("could not read test suite: ", err)
			return
		}
		ts.RunTests()
		return
	}

	// self play
	if *selfPlay > 0 {
		runSelfPlay(*fen, *selfPlay, gameType, *depth, *moveTime)
		return
	}

	// default: best move for the position
	p, err := position.NewPositionFen(*fen)
	if err != nil {
		log.Error("invalid fen: ", err)
		return
	}

	params := search.NewSearchParams()
	params.GameType = gameType
	if *depth > 0 {
		params.Depth = *depth
	}
	if *moveTime > 0 {
		params.TimeLimit = time.Duration(*moveTime) * time.Millisecond
	}

	s := search.NewSearch()
	result, err := s.Search(p, *params)
	if err != nil && !errors.Is(err, search.ErrTimeout) {
		log.Error("search failed: ", err)
		return
	}
	printResult(p, result)
	log.Info(s.Statistics().String())
	if tt := s.TtStats(); tt != "" {
		log.Info(tt)
	}
}

// printResult prints the best move in the true orientation of the game
func printResult(p *position.Position, result *search.Result) {
	if result == nil || !result.HasBestMove {
		out.Println("no best move")
		return
	}
	best := result.BestMove
	if p.TrueActiveColor == types.Black {
		best = best.Inverted()
	}
	out.Printf("bestmove %s (%s)  score %d  depth %d  nodes %d  time %d ms\n",
		best.StringUci(), best.String(), result.Score, result.Depth,
		result.NodesSearched, result.SearchTime.Milliseconds())
	out.Printf("pv %s\n", result.PvString())
}

// runSelfPlay plays the engine against itself for the given number of
// plies, printing every move
func runSelfPlay(fen string, plies int, gt movegen.GameType, depth int, moveTime int) {
	log := logging.GetLog()

	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Error("invalid fen: ", err)
		return
	}

	gs := search.NewGameStateFromPosition(p, gt)
	if depth > 0 {
		gs.SearchDepth = depth
	}
	if moveTime > 0 {
		gs.TimeLimit = time.Duration(moveTime) * time.Millisecond
	}

	for ply := 0; ply < plies; ply++ {
		mover := gs.CurrentTurn
		mv, result, err := gs.SearchAndApply()
		if err != nil {
			if errors.Is(err, search.ErrNoLegalMoves) {
				if gs.CurrentPosition.IsCheck() {
					out.Println("checkmate")
				} else {
					out.Println("stalemate")
				}
			} else {
				log.Error("self play aborted: ", err)
			}
			return
		}
		printed := mv
		if mover == types.Black {
			printed = mv.Inverted()
		}
		out.Printf("%3d. %-6s %-14s score %-7d nodes %d\n",
			gs.MoveNumber, mover.String(), printed.String(), result.Score, result.NodesSearched)
		if gs.IsRepetitionDraw() {
			out.Println("draw by repetition")
			return
		}
	}
	fmt.Println(gs.CurrentPosition.ToFen())
}
