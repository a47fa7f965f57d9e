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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/rescuechess/RescueGo/internal/types"
)

// assertRoundTrip applies then unapplies the move and checks the
// position is restored bit for bit: FEN, all derived bitboards and
// the hash.
func assertRoundTrip(t *testing.T, p *Position, mv PieceMove) {
	t.Helper()
	original := p.Clone()

	assert.NoError(t, p.Apply(&mv))
	assert.NoError(t, p.Unapply(&mv))

	assert.Equal(t, original.ToFen(), p.ToFen())
	assert.Equal(t, original.WhiteMap, p.WhiteMap)
	assert.Equal(t, original.BlackMap, p.BlackMap)
	assert.Equal(t, original.AllMap, p.AllMap)
	assert.Equal(t, original.Hash(), p.Hash())
	assert.Equal(t, len(original.Pieces), len(p.Pieces))
}

func TestApplySimpleMove(t *testing.T) {
	p := NewPosition()
	mv := NewMove(Pawn, SqE2, SqE4)
	assert.NoError(t, p.Apply(&mv))

	assert.Nil(t, p.PieceAt(SqE2))
	pc := p.PieceAt(SqE4)
	assert.NotNil(t, pc)
	assert.Equal(t, Pawn, pc.Type)

	// double push records the en passant target behind the pawn
	assert.Equal(t, SqE3, p.EnPassant)
	// pawn move resets the halfmove clock
	assert.Equal(t, 0, p.HalfmoveClock)
}

func TestApplyE2E4Fen(t *testing.T) {
	// start position, apply e2e4, mirror for black - the FEN matches
	// the expected serialization
	p := NewPosition()
	mv := NewMove(Pawn, SqE2, SqE4)
	assert.NoError(t, p.Apply(&mv))
	p.Invert()

	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", p.ToFen())
}

func TestApplyCapture(t *testing.T) {
	p, err := NewPositionFen("rnb1kbnr/pppp1ppp/8/4q3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)

	mv := NewMove(Pawn, SqD4, SqE5)
	mv.Captured = Queen
	assert.NoError(t, p.Apply(&mv))

	pc := p.PieceAt(SqE5)
	assert.NotNil(t, pc)
	assert.Equal(t, Pawn, pc.Type)
	assert.Equal(t, White, pc.Color)
	assert.Equal(t, 31, len(p.Pieces))
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	p := NewPosition()

	// no piece at origin
	mv := NewMove(Pawn, SqE4, SqE5)
	err := p.Apply(&mv)
	assert.Error(t, err)
	var ime *IllegalMoveError
	assert.ErrorAs(t, err, &ime)

	// destination occupied by own piece
	mv = NewMove(Rook, SqA1, SqA2)
	assert.Error(t, p.Apply(&mv))

	// piece type mismatch
	mv = NewMove(Queen, SqE2, SqE4)
	assert.Error(t, p.Apply(&mv))

	// capture without a victim
	mv = NewMove(Knight, SqB1, SqC3)
	mv.Captured = Pawn
	assert.Error(t, p.Apply(&mv))
}

func TestApplyEnPassant(t *testing.T) {
	// white pawn on e5, black just double pushed d7d5
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)

	mv := NewMove(Pawn, SqE5, SqD6)
	mv.Kind = MkEnPassant
	mv.EpCapture = SqD5

	assertRoundTrip(t, p, mv)

	assert.NoError(t, p.Apply(&mv))
	assert.Nil(t, p.PieceAt(SqD5))
	assert.NotNil(t, p.PieceAt(SqD6))
	assert.Equal(t, SqNone, p.EnPassant)
}

func TestApplyCastling(t *testing.T) {
	p, err := NewPositionFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	mv := NewMove(King, SqE1, SqG1)
	mv.Kind = MkCastle
	mv.RookFrom = SqH1
	mv.RookTo = SqF1

	assertRoundTrip(t, p, mv)

	assert.NoError(t, p.Apply(&mv))
	assert.Equal(t, King, p.PieceAt(SqG1).Type)
	assert.Equal(t, Rook, p.PieceAt(SqF1).Type)
	assert.Nil(t, p.PieceAt(SqE1))
	assert.Nil(t, p.PieceAt(SqH1))

	// castling removes both rights of the mover
	assert.False(t, p.Castling.WhiteKingSide)
	assert.False(t, p.Castling.WhiteQueenSide)
	assert.True(t, p.Castling.BlackKingSide)
	assert.True(t, p.Castling.BlackQueenSide)
}

func TestApplyKingAndRookMovesRemoveRights(t *testing.T) {
	p, err := NewPositionFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	mv := NewMove(Rook, SqA1, SqB1)
	assert.NoError(t, p.Apply(&mv))
	assert.False(t, p.Castling.WhiteQueenSide)
	assert.True(t, p.Castling.WhiteKingSide)

	// and unapply restores them
	assert.NoError(t, p.Unapply(&mv))
	assert.True(t, p.Castling.WhiteQueenSide)
}

func TestApplyPromotion(t *testing.T) {
	p, err := NewPositionFen("8/P7/8/8/8/8/8/K6k w - - 0 1")
	assert.NoError(t, err)

	mv := NewMove(Pawn, SqA7, SqA8)
	mv.PromotedTo = Queen

	assertRoundTrip(t, p, mv)

	assert.NoError(t, p.Apply(&mv))
	pc := p.PieceAt(SqA8)
	assert.NotNil(t, pc)
	assert.Equal(t, Queen, pc.Type)
	// the type bitboards follow the promotion
	assert.True(t, p.Map(White, Queen).Has(SqA8))
	assert.False(t, p.Map(White, Pawn).Has(SqA8))
}

func TestApplyCapturePromotion(t *testing.T) {
	p, err := NewPositionFen("1r6/P7/8/8/8/8/8/K6k w - - 0 1")
	assert.NoError(t, err)

	mv := NewMove(Pawn, SqA7, SqB8)
	mv.Captured = Rook
	mv.PromotedTo = Queen

	assertRoundTrip(t, p, mv)

	assert.NoError(t, p.Apply(&mv))
	assert.Equal(t, Queen, p.PieceAt(SqB8).Type)
	assert.Equal(t, White, p.PieceAt(SqB8).Color)
}

func TestApplyRescueInPlace(t *testing.T) {
	// white pawn b1 rescues the pawn on a1 without moving
	p, err := NewPositionFen("k7/8/8/8/8/8/8/PP5K w - - 0 1")
	assert.NoError(t, err)

	mv := NewMove(Pawn, SqB1, SqB1)
	mv.RescuedAt = SqA1

	assertRoundTrip(t, p, mv)

	assert.NoError(t, p.Apply(&mv))
	assert.Nil(t, p.PieceAt(SqA1))
	carrier := p.PieceAt(SqB1)
	assert.NotNil(t, carrier)
	assert.Equal(t, Pawn, carrier.Holding)
}

func TestApplyMoveAndRescue(t *testing.T) {
	p, err := NewPositionFen("k7/8/8/8/8/8/P7/1P5K w - - 0 1")
	assert.NoError(t, err)

	// b1 pawn moves to b2 and picks up the a2 pawn
	mv := NewMove(Pawn, SqB1, SqB2)
	mv.RescuedAt = SqA2

	assertRoundTrip(t, p, mv)

	assert.NoError(t, p.Apply(&mv))
	assert.Nil(t, p.PieceAt(SqA2))
	carrier := p.PieceAt(SqB2)
	assert.NotNil(t, carrier)
	assert.Equal(t, Pawn, carrier.Holding)
}

func TestApplyDrop(t *testing.T) {
	// the b2 pawn is holding a pawn and drops it on b3
	p, err := NewPositionFen("k7/8/8/8/8/8/1PxP6/7K w - - 0 1")
	assert.NoError(t, err)

	carrier := p.PieceAt(SqB2)
	assert.NotNil(t, carrier)
	assert.Equal(t, Pawn, carrier.Holding)

	mv := NewMove(Pawn, SqB2, SqB2)
	mv.DroppedAt = SqB3

	assertRoundTrip(t, p, mv)

	assert.NoError(t, p.Apply(&mv))
	assert.Equal(t, PtNone, p.PieceAt(SqB2).Holding)
	dropped := p.PieceAt(SqB3)
	assert.NotNil(t, dropped)
	assert.Equal(t, Pawn, dropped.Type)
	assert.Equal(t, White, dropped.Color)
}

func TestApplyCaptureAndDrop(t *testing.T) {
	// queen holding a rook captures on d5 and drops the rook next to it
	p, err := NewPositionFen("k7/8/8/3p4/8/8/3QxR4/7K w - - 0 1")
	assert.NoError(t, err)

	mv := NewMove(Queen, SqD2, SqD5)
	mv.Captured = Pawn
	mv.DroppedAt = SqE5

	assertRoundTrip(t, p, mv)

	assert.NoError(t, p.Apply(&mv))
	assert.Equal(t, Queen, p.PieceAt(SqD5).Type)
	assert.Equal(t, PtNone, p.PieceAt(SqD5).Holding)
	assert.Equal(t, Rook, p.PieceAt(SqE5).Type)
}

func TestApplyRescueViolations(t *testing.T) {
	// a pawn cannot hold a knight
	p, err := NewPositionFen("k7/8/8/8/8/8/8/PN5K w - - 0 1")
	assert.NoError(t, err)

	mv := NewMove(Pawn, SqA1, SqA1)
	mv.RescuedAt = SqB1
	assert.Error(t, p.Apply(&mv))

	// dropping without holding anything
	mv = NewMove(Knight, SqB1, SqB1)
	mv.DroppedAt = SqB2
	assert.Error(t, p.Apply(&mv))
}

func TestApplyHalfmoveClock(t *testing.T) {
	p, err := NewPositionFen("r3k3/8/8/8/8/8/8/4K2R w - - 5 20")
	assert.NoError(t, err)

	// a quiet rook move increments the clock
	mv := NewMove(Rook, SqH1, SqH5)
	assert.NoError(t, p.Apply(&mv))
	assert.Equal(t, 6, p.HalfmoveClock)

	// unapply restores it
	assert.NoError(t, p.Unapply(&mv))
	assert.Equal(t, 5, p.HalfmoveClock)
}
