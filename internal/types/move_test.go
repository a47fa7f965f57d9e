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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMove(t *testing.T) {
	mv := NewMove(Knight, SqB1, SqC3)
	assert.Equal(t, Knight, mv.PieceType)
	assert.Equal(t, MkNormal, mv.Kind)
	assert.False(t, mv.IsCapture())
	assert.False(t, mv.IsPromotion())
	assert.False(t, mv.HasRescue())
	assert.False(t, mv.HasDrop())
}

func TestMoveString(t *testing.T) {
	mv := NewMove(Knight, SqB1, SqC3)
	assert.Equal(t, "Nc3", mv.String())
	assert.Equal(t, "b1c3", mv.StringUci())

	capture := NewMove(Pawn, SqE4, SqD5)
	capture.Captured = Pawn
	assert.Equal(t, "xd5", capture.String())

	rescue := NewMove(Queen, SqD1, SqD3)
	rescue.RescuedAt = SqD4
	assert.Equal(t, "Qd3Sd4", rescue.String())

	drop := NewMove(Queen, SqD3, SqD3)
	drop.DroppedAt = SqE3
	assert.Equal(t, "Qd3De3", drop.String())

	promo := NewMove(Pawn, SqE7, SqE8)
	promo.PromotedTo = Queen
	assert.Equal(t, "e8=Q", promo.String())
	assert.Equal(t, "e7e8q", promo.StringUci())
}

func TestMoveInvert(t *testing.T) {
	mv := NewMove(Pawn, SqE2, SqE4)
	inv := mv.Inverted()
	assert.Equal(t, SqD7, inv.From)
	assert.Equal(t, SqD5, inv.To)

	// inverting twice is the identity
	assert.Equal(t, mv, inv.Inverted())

	// all embedded squares are mirrored
	r := NewMove(King, SqE1, SqG1)
	r.Kind = MkCastle
	r.RookFrom = SqH1
	r.RookTo = SqF1
	ri := r.Inverted()
	assert.Equal(t, SqD8, ri.From)
	assert.Equal(t, SqB8, ri.To)
	assert.Equal(t, SqA8, ri.RookFrom)
	assert.Equal(t, SqC8, ri.RookTo)
}

func TestMoveEqualsIgnoresBookkeeping(t *testing.T) {
	a := NewMove(Rook, SqA1, SqA4)
	b := a

	// fields filled in by apply do not change identity
	b.PrevHalfmove = 17
	b.PrevCastling = AllCastlingRights()
	b.CapturedHolding = Pawn
	b.DroppedType = Pawn
	assert.True(t, a.Equals(&b))

	c := a
	c.To = SqA5
	assert.False(t, a.Equals(&c))

	d := a
	d.RescuedAt = SqB1
	assert.False(t, a.Equals(&d))
}

func TestCanHoldTable(t *testing.T) {
	assert.True(t, Pawn.CanHold(Pawn))
	assert.False(t, Pawn.CanHold(Knight))

	assert.True(t, Bishop.CanHold(Pawn))
	assert.True(t, Bishop.CanHold(Bishop))
	assert.False(t, Bishop.CanHold(Knight))

	assert.True(t, Knight.CanHold(Knight))
	assert.False(t, Knight.CanHold(Rook))

	assert.True(t, Rook.CanHold(Rook))
	assert.False(t, Rook.CanHold(Queen))

	assert.True(t, Queen.CanHold(Pawn))
	assert.True(t, Queen.CanHold(Bishop))
	assert.True(t, Queen.CanHold(Knight))
	assert.True(t, Queen.CanHold(Rook))
	assert.False(t, Queen.CanHold(Queen))
	assert.False(t, Queen.CanHold(King))

	for pt := Pawn; pt <= King; pt++ {
		assert.True(t, King.CanHold(pt))
	}

	// the sentinel is never holdable
	assert.False(t, King.CanHold(PtNone))
}

func TestPieceValues(t *testing.T) {
	assert.Equal(t, Value(100), Pawn.ValueOf())
	assert.Equal(t, Value(300), Knight.ValueOf())
	assert.Equal(t, Value(300), Bishop.ValueOf())
	assert.Equal(t, Value(500), Rook.ValueOf())
	assert.Equal(t, Value(900), Queen.ValueOf())
	assert.Greater(t, int(King.ValueOf()), int(Queen.ValueOf()+2*Rook.ValueOf()+2*Bishop.ValueOf()+2*Knight.ValueOf()+8*Pawn.ValueOf()))
}
