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

// Package testsuite runs EPD test suites against the search: every
// record with a "bm" operation is searched and the engine's best move
// compared against the expected one.
package testsuite

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/rescuechess/RescueGo/internal/logging"
	"github.com/rescuechess/RescueGo/internal/movegen"
	"github.com/rescuechess/RescueGo/internal/notation"
	"github.com/rescuechess/RescueGo/internal/position"
	"github.com/rescuechess/RescueGo/internal/search"
	. "github.com/rescuechess/RescueGo/internal/types"
)

var out = message.NewPrinter(language.English)

// Test is one EPD test: a position and the expected best moves
type Test struct {
	ID       string
	Fen      string
	Expected []PieceMove

	// result after running
	Actual   PieceMove
	Score    Value
	Success  bool
	Nodes    uint64
	TimeUsed time.Duration
}

// TestSuite is a list of tests read from an EPD file
type TestSuite struct {
	log *logging.Logger

	FilePath   string
	Tests      []*Test
	Depth      int
	MoveTime   time.Duration
	GameType   movegen.GameType
	Successful int
	Failed     int
}

// NewTestSuite reads the EPD file and creates a test suite with the
// given per-position limits
func NewTestSuite(filePath string, depth int, moveTime time.Duration, gt movegen.GameType) (*TestSuite, error) {
	ts := &TestSuite{
		log:      myLogging.GetLog(),
		FilePath: filePath,
		Depth:    depth,
		MoveTime: moveTime,
		GameType: gt,
	}
	if err := ts.readFile(); err != nil {
		return nil, err
	}
	return ts, nil
}

// readFile reads and parses all EPD records of the file
func (ts *TestSuite) readFile() error {
	f, err := os.Open(ts.FilePath)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		test, err := ts.parseLine(line)
		if err != nil {
			ts.log.Warningf("%s:%d skipped: %s", ts.FilePath, lineNo, err)
			continue
		}
		ts.Tests = append(ts.Tests, test)
	}
	return scanner.Err()
}

// parseLine parses one EPD line into a Test
func (ts *TestSuite) parseLine(line string) (*Test, error) {
	epd, err := position.NewPositionEpd(line)
	if err != nil {
		return nil, err
	}
	bm := epd.Operation("bm")
	if bm == nil {
		return nil, errors.New("no bm operation")
	}

	test := &Test{Fen: epd.Position.ToFen()}

	if id := epd.Operation("id"); len(id) > 0 {
		test.ID = id[0].Str
	}

	moves, err := movegen.LegalMoves(epd.Position, ts.GameType)
	if err != nil {
		return nil, err
	}
	for _, operand := range bm {
		if operand.Kind != position.EpdSanMove {
			continue
		}
		parsed, err := notation.ParseSan(operand.Str)
		if err != nil {
			return nil, err
		}
		if epd.Position.TrueActiveColor == Black {
			parsed.Invert()
		}
		mv, err := parsed.Resolve(moves)
		if err != nil {
			return nil, err
		}
		test.Expected = append(test.Expected, mv)
	}
	if len(test.Expected) == 0 {
		return nil, errors.New("bm operation without resolvable move")
	}
	return test, nil
}

// RunTests runs all tests of the suite and reports the results
func (ts *TestSuite) RunTests() {
	ts.Successful = 0
	ts.Failed = 0
	start := time.Now()

	for i, test := range ts.Tests {
		ts.runTest(test)
		status := "FAIL"
		if test.Success {
			status = "OK  "
			ts.Successful++
		} else {
			ts.Failed++
		}
		ts.log.Info(out.Sprintf("%3d/%d %s %-20s best %-10s score %-7d nodes %-12d %s",
			i+1, len(ts.Tests), status, test.ID, test.Actual.String(), test.Score, test.Nodes, test.Fen))
	}

	ts.log.Info(out.Sprintf("Finished %d tests in %d ms: %d successful, %d failed",
		len(ts.Tests), time.Since(start).Milliseconds(), ts.Successful, ts.Failed))
}

// runTest searches one test position and checks the best move
func (ts *TestSuite) runTest(test *Test) {
	p, err := position.NewPositionFen(test.Fen)
	if err != nil {
		ts.log.Error("invalid test fen: ", err)
		return
	}

	params := search.NewSearchParams()
	params.Depth = ts.Depth
	params.TimeLimit = ts.MoveTime
	params.GameType = ts.GameType

	s := search.NewSearch()
	startTime := time.Now()
	result, err := s.Search(p, *params)
	test.TimeUsed = time.Since(startTime)
	if err != nil && !errors.Is(err, search.ErrTimeout) {
		ts.log.Error("search failed: ", err)
		return
	}
	if result == nil || !result.HasBestMove {
		return
	}

	test.Actual = result.BestMove
	test.Score = result.Score
	test.Nodes = result.NodesSearched
	for i := range test.Expected {
		if test.Expected[i].Equals(&result.BestMove) {
			test.Success = true
			break
		}
	}
}
