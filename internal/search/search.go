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

// Package search implements the search of the engine: iterative
// deepening with aspiration windows around a principal variation
// alpha-beta search with quiescence, transposition table, killer and
// history move ordering and late move reductions.
//
// The search itself is strictly single threaded. The only concurrency
// is that a search can be launched on a background goroutine so the
// caller stays responsive; start/stop is coordinated with semaphores.
package search

import (
	"context"
	"errors"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rescuechess/RescueGo/internal/config"
	"github.com/rescuechess/RescueGo/internal/evaluator"
	"github.com/rescuechess/RescueGo/internal/history"
	myLogging "github.com/rescuechess/RescueGo/internal/logging"
	"github.com/rescuechess/RescueGo/internal/movegen"
	"github.com/rescuechess/RescueGo/internal/position"
	"github.com/rescuechess/RescueGo/internal/transpositiontable"
	. "github.com/rescuechess/RescueGo/internal/types"
)

var out = message.NewPrinter(language.English)

// errors surfaced to callers
var (
	// ErrTimeout - the wall clock budget is exhausted. The best move
	// of the deepest completed iteration is still valid.
	ErrTimeout = errors.New("search: time limit exceeded")

	// ErrNoLegalMoves - the position is terminal
	ErrNoLegalMoves = errors.New("search: no legal moves")
)

// aspiration window failures before the window falls back to the full
// bounds
const maxWindowFailures = 5

// Search holds the state of one search instance. A search owns its
// transposition table (optionally reused across searches of the same
// game); killers and history are reset per search.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt      *transpositiontable.TtTable
	eval    *evaluator.Evaluator
	history *history.History
	killers *KillerStore

	params *SearchParams
	stats  Statistics

	startTime time.Time
	timeLimit time.Duration

	lastResult *Result
	hasResult  bool
	lastError  error

	// observer called with the best move and score of every completed
	// iteration
	onNewBestMove func(PieceMove, Value)
}

// NewSearch creates a new Search instance
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
	}
}

// SetBestMoveHandler installs an observer which is called with the
// best move and score of every completed iteration
func (s *Search) SetBestMoveHandler(handler func(PieceMove, Value)) {
	s.onNewBestMove = handler
}

// StartSearch starts the search on a background goroutine so the
// calling (protocol) thread stays responsive. Use WaitWhileSearching
// and LastSearchResult to collect the outcome.
func (s *Search) StartSearch(p position.Position, params SearchParams) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	go func() {
		_ = s.isRunning.Acquire(context.TODO(), 1)
		defer s.isRunning.Release(1)
		s.initSemaphore.Release(1)
		result, err := s.Search(&p, params)
		s.lastResult = result
		s.lastError = err
		s.hasResult = err == nil || errors.Is(err, ErrTimeout)
	}()
	// wait until the goroutine has taken over before returning
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// WaitWhileSearching blocks until a running background search has
// stopped
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// LastSearchResult returns the result of the last completed search
func (s *Search) LastSearchResult() *Result {
	return s.lastResult
}

// HasResult reports whether a completed search result is available
func (s *Search) HasResult() bool {
	return s.hasResult
}

// Statistics returns the counters of the last search
func (s *Search) Statistics() *Statistics {
	return &s.stats
}

// TtStats returns a string representation of the transposition table
// state or an empty string when no table is in use
func (s *Search) TtStats() string {
	if s.tt == nil {
		return ""
	}
	return s.tt.String()
}

// ClearTT clears the transposition table (e.g. for a new game)
func (s *Search) ClearTT() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

// Search runs iterative deepening on the position: for every depth
// from 1 upward one aspiration window search seeded with the score of
// the previous iteration. On timeout the deepest fully completed
// iteration is returned together with ErrTimeout.
func (s *Search) Search(p *position.Position, params SearchParams) (*Result, error) {
	s.params = &params
	s.stats = Statistics{}
	s.startTime = time.Now()
	s.timeLimit = params.TimeLimit
	if s.timeLimit <= 0 {
		s.timeLimit = time.Duration(1<<62 - 1)
	}

	s.eval = evaluator.NewEvaluator(params.Features.Eval)
	s.killers = NewKillerStore()
	s.history = history.NewHistory()
	if params.Features.UseTT && s.tt == nil {
		s.tt = transpositiontable.NewTtTable(config.Settings.Search.TTSize)
	}

	// a terminal position has no best move at any depth
	rootMoves, err := movegen.LegalMoves(p, params.GameType)
	if err != nil {
		return nil, err
	}
	if len(rootMoves) == 0 {
		result := &Result{Score: ValueDraw, SearchTime: time.Since(s.startTime)}
		if p.IsCheck() {
			result.Score = -ValueCheckmate
		}
		return result, ErrNoLegalMoves
	}

	result := &Result{}
	prevScore := params.PreviousScore
	hasPrev := params.HasPreviousScore

	for depth := 1; depth <= params.Depth; depth++ {
		if s.timeUp() {
			return result, ErrTimeout
		}

		res, err := s.searchIteration(p, depth, prevScore, hasPrev)
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				s.slog.Debug(out.Sprintf("Timeout at depth %d after %d ms", depth, time.Since(s.startTime).Milliseconds()))
				return result, ErrTimeout
			}
			return result, err
		}

		result.BestMove = res.pv[0]
		result.HasBestMove = true
		result.Score = res.score
		result.Depth = depth
		result.Pv = res.pv
		result.NodesSearched = s.stats.NodesVisited
		result.CachedPositions = s.stats.CachedPositions
		result.Pruned = s.stats.Pruned
		result.SearchTime = time.Since(s.startTime)

		prevScore = res.score
		hasPrev = true

		s.slog.Debug(out.Sprintf("Depth %d: %s", depth, result.String()))

		if s.onNewBestMove != nil {
			s.onNewBestMove(result.BestMove, result.Score)
		}
	}

	s.lastResult = result
	s.hasResult = true
	return result, nil
}

// searchIteration runs one depth with an aspiration window around the
// previous score. On a window failure the offset doubles and the
// search retries; after maxWindowFailures failures the window falls
// back to the full bounds.
func (s *Search) searchIteration(p *position.Position, depth int, prevScore Value, hasPrev bool) (searchResult, error) {
	window := s.params.WindowSize
	if window <= 0 {
		window = 50
	}

	alpha := -ValueInitialBound
	beta := ValueInitialBound
	useWindow := s.params.Features.UseAspiration && hasPrev
	if useWindow {
		alpha = prevScore - window
		beta = prevScore + window
	}

	offset := window
	failures := 0

	for {
		if alpha < -ValueInitialBound {
			alpha = -ValueInitialBound
		}
		if beta > ValueInitialBound {
			beta = ValueInitialBound
		}

		res, err := s.alphaBeta(p, alpha, beta, depth, 0)
		if err != nil {
			return searchResult{}, err
		}

		// inside the window with a line to play - done
		if res.score > alpha && res.score < beta && len(res.pv) > 0 {
			return res, nil
		}

		if !useWindow {
			// with full bounds there is nothing to widen
			return searchResult{}, ErrNoLegalMoves
		}

		failures++
		s.stats.AspirationFailures++
		s.slog.Debug(out.Sprintf("Aspiration window (%d, %d) failed at depth %d, widening", alpha, beta, depth))

		offset *= 2
		alpha = prevScore - offset
		beta = prevScore + offset

		if failures >= maxWindowFailures {
			alpha = -ValueInitialBound
			beta = ValueInitialBound
			useWindow = false
		}
	}
}

// timeUp samples the monotonic clock against the installed deadline
func (s *Search) timeUp() bool {
	return time.Since(s.startTime) >= s.timeLimit
}
