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

	"github.com/stretchr/testify/assert"

	"github.com/rescuechess/RescueGo/internal/movegen"
	"github.com/rescuechess/RescueGo/internal/position"
	. "github.com/rescuechess/RescueGo/internal/types"
)

func TestOrderingPutsTtMoveFirst(t *testing.T) {
	p := position.NewPosition()
	moves, err := movegen.LegalMoves(p, movegen.Classic)
	assert.NoError(t, err)

	s := newTestSearch(testParams(3))

	// pick a quiet move that would never sort first on its own
	ttMove := NewMove(Pawn, SqA2, SqA3)
	s.orderMoves(p, moves, &ttMove, 0)
	assert.True(t, moves[0].Equals(&ttMove), "the tt move leads the ordering")
}

func TestOrderingPrefersCaptures(t *testing.T) {
	// white can capture the queen with the pawn or play quiet moves
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4q3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)
	moves, err := movegen.LegalMoves(p, movegen.Classic)
	assert.NoError(t, err)

	s := newTestSearch(testParams(3))
	s.orderMoves(p, moves, nil, 0)

	assert.True(t, moves[0].IsCapture(), "a capture sorts first, got %s", moves[0].String())
	assert.Equal(t, Queen, moves[0].Captured)
}

func TestOrderingMvvLva(t *testing.T) {
	// both the pawn and the rook can capture the queen - the pawn
	// (least valuable aggressor) goes first
	p, err := position.NewPositionFen("4k3/8/8/3q4/4P3/8/8/3R2K1 w - - 0 1")
	assert.NoError(t, err)
	moves, err := movegen.LegalMoves(p, movegen.Classic)
	assert.NoError(t, err)

	s := newTestSearch(testParams(3))
	s.orderMoves(p, moves, nil, 0)

	assert.True(t, moves[0].IsCapture())
	assert.Equal(t, Pawn, moves[0].PieceType, "least valuable aggressor first, got %s", moves[0].String())
}

func TestOrderingKillers(t *testing.T) {
	p := position.NewPosition()
	moves, err := movegen.LegalMoves(p, movegen.Classic)
	assert.NoError(t, err)

	s := newTestSearch(testParams(3))

	killer := NewMove(Knight, SqB1, SqC3)
	s.killers.Add(&killer, 0)

	s.orderMoves(p, moves, nil, 0)
	assert.True(t, moves[0].Equals(&killer), "the killer leads without a tt move")

	// the tt move still beats the killer
	ttMove := NewMove(Pawn, SqD2, SqD4)
	s.orderMoves(p, moves, &ttMove, 0)
	assert.True(t, moves[0].Equals(&ttMove))
	assert.True(t, moves[1].Equals(&killer))
}

func TestKillerStore(t *testing.T) {
	k := NewKillerStore()
	mv1 := NewMove(Knight, SqB1, SqC3)
	mv2 := NewMove(Pawn, SqE2, SqE4)

	assert.Equal(t, 0, k.Matches(&mv1, 0))

	k.Add(&mv1, 0)
	assert.Equal(t, 1, k.Matches(&mv1, 0))

	k.Add(&mv2, 0)
	assert.Equal(t, 1, k.Matches(&mv2, 0))
	assert.Equal(t, 2, k.Matches(&mv1, 0))

	// re-adding the first killer does not shift slots
	k.Add(&mv2, 0)
	assert.Equal(t, 1, k.Matches(&mv2, 0))
	assert.Equal(t, 2, k.Matches(&mv1, 0))

	// captures are not stored
	capture := NewMove(Pawn, SqE4, SqD5)
	capture.Captured = Pawn
	k.Add(&capture, 1)
	assert.Equal(t, 0, k.Matches(&capture, 1))

	// plies are independent
	assert.Equal(t, 0, k.Matches(&mv1, 1))
}

func TestOrderingCentralPawnPush(t *testing.T) {
	p := position.NewPosition()
	moves, err := movegen.LegalMoves(p, movegen.Classic)
	assert.NoError(t, err)

	s := newTestSearch(testParams(3))
	s.orderMoves(p, moves, nil, 0)

	// the central pushes d4/e4 sort above the wing pushes
	posOf := func(uci string) int {
		for i := range moves {
			if moves[i].StringUci() == uci {
				return i
			}
		}
		return -1
	}
	assert.Less(t, posOf("e2e4"), posOf("a2a3"))
	assert.Less(t, posOf("d2d4"), posOf("h2h4"))
}

func TestOrderingIsDeterministic(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/pppn1p1p/8/8/8/3B4/PPP2PPP/4K3 w - - 0 1")
	assert.NoError(t, err)

	s := newTestSearch(testParams(3))

	first, err := movegen.LegalMoves(p, movegen.Classic)
	assert.NoError(t, err)
	s.orderMoves(p, first, nil, 0)

	second, err := movegen.LegalMoves(p, movegen.Classic)
	assert.NoError(t, err)
	s.orderMoves(p, second, nil, 0)

	for i := range first {
		assert.True(t, first[i].Equals(&second[i]), "ordering differs at %d", i)
	}
}

func TestHistoryInfluencesOrdering(t *testing.T) {
	p := position.NewPosition()
	moves, err := movegen.LegalMoves(p, movegen.Classic)
	assert.NoError(t, err)

	s := newTestSearch(testParams(3))

	// teach the history that a2a3 keeps causing cutoffs
	quiet := NewMove(Pawn, SqA2, SqA3)
	for i := 0; i < 10; i++ {
		s.history.Update(&quiet, 8, true)
	}

	s.orderMoves(p, moves, nil, 0)
	assert.True(t, moves[0].Equals(&quiet), "history lifts the quiet move, got %s", moves[0].String())
}
