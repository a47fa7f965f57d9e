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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rescuechess/RescueGo/internal/movegen"
	"github.com/rescuechess/RescueGo/internal/notation"
	"github.com/rescuechess/RescueGo/internal/position"
	. "github.com/rescuechess/RescueGo/internal/types"
)

// parseForTurn parses a SAN move given in the true orientation and
// mirrors it when it is black's turn
func parseForTurn(san string, turn Color) (*notation.ParsedMove, error) {
	parsed, err := notation.ParseSan(san)
	if err != nil {
		return nil, err
	}
	if turn == Black {
		parsed.Invert()
	}
	return parsed, nil
}

// S2 - black must defend against the scholar's mate threat
func TestScholarsMateDefense(t *testing.T) {
	p, err := movegen.PositionFromMoves([]string{"e4", "e5", "Bc4", "Nc6", "Qh5"}, movegen.Classic)
	assert.NoError(t, err)
	assert.Equal(t, Black, p.TrueActiveColor)

	s := NewSearch()
	result, err := s.Search(p, testParams(4))
	assert.NoError(t, err)
	assert.True(t, result.HasBestMove)

	// the move is found on the mirrored board - undo the mirroring
	// for comparison with the true-orientation notation
	best := result.BestMove.Inverted().StringUci()
	defenses := map[string]bool{"g7g6": true, "g8f6": true, "d8e7": true, "d8f6": true}
	assert.True(t, defenses[best], "expected a defense against Qxf7#, got %s", best)
}

// S3 - sensible development after 1.e4 e6 2.e5 Nc6
func TestObviousDevelopment(t *testing.T) {
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}
	for depth := 2; depth <= maxDepth; depth++ {
		p, err := movegen.PositionFromMoves([]string{"e4", "e6", "e5", "Nc6"}, movegen.Classic)
		assert.NoError(t, err)

		s := NewSearch()
		result, err := s.Search(p, testParams(depth))
		assert.NoError(t, err)
		assert.True(t, result.HasBestMove)

		best := result.BestMove.StringUci()
		good := map[string]bool{"d2d4": true, "g1f3": true, "f2f4": true, "d1h5": true}
		assert.True(t, good[best], "at depth %d expected d4/Nf3/f4/Qh5, got %s", depth, best)
	}
}

func TestIterativeDeepeningReachesDepth(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch()

	result, err := s.Search(p, testParams(3))
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Depth)
	assert.True(t, result.HasBestMove)
	assert.Greater(t, result.NodesSearched, uint64(0))
	assert.Equal(t, result.BestMove, result.Pv[0])
}

func TestTimeoutReturnsDeepestCompletedIteration(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch()

	params := testParams(64)
	params.TimeLimit = 150 * time.Millisecond

	start := time.Now()
	result, err := s.Search(p, params)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrTimeout)
	// the best move of the deepest completed iteration is still valid
	assert.True(t, result.HasBestMove)
	assert.Greater(t, result.Depth, 0)
	assert.Less(t, result.Depth, 64)
	// the budget is honoured within a scheduling margin
	assert.Less(t, elapsed.Milliseconds(), int64(5_000))
}

func TestAspirationWindowRetries(t *testing.T) {
	// a position with a forced material swing makes the seeded window
	// fail and forces the widening schedule
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4q3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)

	params := testParams(3)
	// seed the window far away from the real score
	params.HasPreviousScore = true
	params.PreviousScore = -500

	s := NewSearch()
	result, err := s.Search(p, params)
	assert.NoError(t, err)
	assert.Equal(t, "d4e5", result.BestMove.StringUci())
	assert.Greater(t, s.stats.AspirationFailures, uint64(0))
}

func TestAspirationDisabledStillSearches(t *testing.T) {
	p := position.NewPosition()
	params := testParams(3)
	params.Features.UseAspiration = false
	params.HasPreviousScore = true
	params.PreviousScore = 0

	s := NewSearch()
	result, err := s.Search(p, params)
	assert.NoError(t, err)
	assert.True(t, result.HasBestMove)
	assert.Equal(t, uint64(0), s.stats.AspirationFailures)
}

func TestBestMoveObserver(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch()

	var notified []PieceMove
	s.SetBestMoveHandler(func(mv PieceMove, score Value) {
		notified = append(notified, mv)
	})

	result, err := s.Search(p, testParams(3))
	assert.NoError(t, err)
	// one notification per completed iteration
	assert.Equal(t, 3, len(notified))
	assert.True(t, notified[len(notified)-1].Equals(&result.BestMove))
}

func TestBackgroundSearch(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch()

	s.StartSearch(*p, testParams(3))
	s.WaitWhileSearching()

	assert.True(t, s.HasResult())
	assert.True(t, s.LastSearchResult().HasBestMove)
}

func TestSearchDisabledFeatures(t *testing.T) {
	// disabling TT, LMR, killers and history must not change the
	// ability to find the obvious capture
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4q3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)

	params := testParams(3)
	params.Features.UseTT = false
	params.Features.UseLmr = false
	params.Features.UseKiller = false
	params.Features.UseHistory = false
	params.Features.UseAspiration = false

	s := NewSearch()
	result, err := s.Search(p, params)
	assert.NoError(t, err)
	assert.Equal(t, "d4e5", result.BestMove.StringUci())
}

func TestRescueSearchFindsMoves(t *testing.T) {
	// the variant searches and plays legal rescue moves
	p := position.NewPosition()
	params := testParams(2)
	params.GameType = movegen.Rescue

	s := NewSearch()
	result, err := s.Search(p, params)
	assert.NoError(t, err)
	assert.True(t, result.HasBestMove)

	// the chosen move must be among the legal variant moves
	moves, err := movegen.LegalMoves(p, movegen.Rescue)
	assert.NoError(t, err)
	found := false
	for i := range moves {
		if moves[i].Equals(&result.BestMove) {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestGameStateApplyAndRepetition(t *testing.T) {
	gs := NewGameState(movegen.Classic)
	assert.Equal(t, 1, gs.TimesCurrentPositionSeen())
	assert.Equal(t, White, gs.CurrentTurn)

	// shuffle the knights out and back twice - threefold repetition
	shuffle := []string{"Nf3", "Nf6", "Ng1", "Ng8"}
	for round := 0; round < 2; round++ {
		for _, san := range shuffle {
			moves, err := movegen.LegalMoves(gs.CurrentPosition, movegen.Classic)
			assert.NoError(t, err)
			parsed, err := parseForTurn(san, gs.CurrentTurn)
			assert.NoError(t, err)
			mv, err := parsed.Resolve(moves)
			assert.NoError(t, err)
			assert.NoError(t, gs.ApplyMove(mv))
		}
	}

	assert.Equal(t, 8, gs.NumPlies)
	assert.True(t, gs.IsRepetitionDraw())
}

func TestGameStateSearchAndApply(t *testing.T) {
	gs := NewGameState(movegen.Classic)
	gs.SearchDepth = 2
	gs.TimeLimit = 10 * time.Second

	for i := 0; i < 4; i++ {
		mover := gs.CurrentTurn
		_, result, err := gs.SearchAndApply()
		assert.NoError(t, err)
		assert.True(t, result.HasBestMove)

		// the previous score of the mover seeds the next search
		score, ok := gs.PreviousScore(mover)
		assert.True(t, ok)
		assert.Equal(t, result.Score, score)
	}
	assert.Equal(t, 4, gs.NumPlies)
	assert.Equal(t, 3, gs.MoveNumber)
}
