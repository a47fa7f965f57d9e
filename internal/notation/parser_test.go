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

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/rescuechess/RescueGo/internal/types"
)

func TestParsePawnMoves(t *testing.T) {
	parsed, err := ParseSan("e4")
	assert.NoError(t, err)
	assert.Equal(t, Pawn, parsed.PieceType)
	assert.Equal(t, FileNone, parsed.FromFile)
	assert.Equal(t, FileE, parsed.ToFile)
	assert.Equal(t, Row4, parsed.ToRow)
	assert.Equal(t, SqE4, parsed.To())
	assert.False(t, parsed.IsCapture)

	parsed, err = ParseSan("d3")
	assert.NoError(t, err)
	assert.Equal(t, SqD3, parsed.To())
}

func TestParsePawnCaptures(t *testing.T) {
	parsed, err := ParseSan("exd5")
	assert.NoError(t, err)
	assert.Equal(t, Pawn, parsed.PieceType)
	assert.Equal(t, FileE, parsed.FromFile)
	assert.Equal(t, RowNone, parsed.FromRow)
	assert.Equal(t, SqD5, parsed.To())
	assert.True(t, parsed.IsCapture)

	parsed, err = ParseSan("fxe4")
	assert.NoError(t, err)
	assert.Equal(t, FileF, parsed.FromFile)
	assert.Equal(t, SqE4, parsed.To())
	assert.True(t, parsed.IsCapture)
}

func TestParsePieceMoves(t *testing.T) {
	parsed, err := ParseSan("Nf3")
	assert.NoError(t, err)
	assert.Equal(t, Knight, parsed.PieceType)
	assert.Equal(t, FileNone, parsed.FromFile)
	assert.Equal(t, SqF3, parsed.To())

	parsed, err = ParseSan("Be4")
	assert.NoError(t, err)
	assert.Equal(t, Bishop, parsed.PieceType)
	assert.Equal(t, SqE4, parsed.To())

	parsed, err = ParseSan("Ra3")
	assert.NoError(t, err)
	assert.Equal(t, Rook, parsed.PieceType)
	assert.Equal(t, SqA3, parsed.To())
}

func TestParseDisambiguation(t *testing.T) {
	// file disambiguation
	parsed, err := ParseSan("Nbd7")
	assert.NoError(t, err)
	assert.Equal(t, Knight, parsed.PieceType)
	assert.Equal(t, FileB, parsed.FromFile)
	assert.Equal(t, RowNone, parsed.FromRow)
	assert.Equal(t, SqD7, parsed.To())

	// rank disambiguation
	parsed, err = ParseSan("R1a3")
	assert.NoError(t, err)
	assert.Equal(t, Row1, parsed.FromRow)
	assert.Equal(t, FileNone, parsed.FromFile)
	assert.Equal(t, SqA3, parsed.To())

	// full origin square
	parsed, err = ParseSan("Qd1e2")
	assert.NoError(t, err)
	assert.Equal(t, FileD, parsed.FromFile)
	assert.Equal(t, Row1, parsed.FromRow)
	assert.Equal(t, SqE2, parsed.To())
}

func TestParseCaptureWithOrigin(t *testing.T) {
	parsed, err := ParseSan("Nb1xe3")
	assert.NoError(t, err)
	assert.Equal(t, Knight, parsed.PieceType)
	assert.Equal(t, FileB, parsed.FromFile)
	assert.Equal(t, Row1, parsed.FromRow)
	assert.Equal(t, SqE3, parsed.To())
	assert.True(t, parsed.IsCapture)
}

func TestParseRescueAndDrop(t *testing.T) {
	// rescue suffix S<sq>
	parsed, err := ParseSan("Qd3Sd4")
	assert.NoError(t, err)
	assert.Equal(t, Queen, parsed.PieceType)
	assert.Equal(t, SqD3, parsed.To())
	assert.Equal(t, Rescue, parsed.RescueDrop)
	assert.Equal(t, FileD, parsed.RescueDropFile)
	assert.Equal(t, Row4, parsed.RescueDropRow)

	// drop suffix D<sq>
	parsed, err = ParseSan("e4Dd5")
	assert.NoError(t, err)
	assert.Equal(t, Pawn, parsed.PieceType)
	assert.Equal(t, SqE4, parsed.To())
	assert.Equal(t, Drop, parsed.RescueDrop)
	assert.Equal(t, FileD, parsed.RescueDropFile)
	assert.Equal(t, Row5, parsed.RescueDropRow)

	// capture, rescue and annotations combined
	parsed, err = ParseSan("Nb1xe3Sf4?!")
	assert.NoError(t, err)
	assert.Equal(t, Knight, parsed.PieceType)
	assert.Equal(t, FileB, parsed.FromFile)
	assert.Equal(t, Row1, parsed.FromRow)
	assert.Equal(t, SqE3, parsed.To())
	assert.True(t, parsed.IsCapture)
	assert.Equal(t, Rescue, parsed.RescueDrop)
	assert.Equal(t, FileF, parsed.RescueDropFile)
	assert.Equal(t, Row4, parsed.RescueDropRow)
}

func TestParsePromotion(t *testing.T) {
	parsed, err := ParseSan("e8=Q")
	assert.NoError(t, err)
	assert.Equal(t, Pawn, parsed.PieceType)
	assert.Equal(t, SqE8, parsed.To())
	assert.Equal(t, Queen, parsed.PromotionTo)

	parsed, err = ParseSan("exd8=N+")
	assert.NoError(t, err)
	assert.True(t, parsed.IsCapture)
	assert.Equal(t, Knight, parsed.PromotionTo)
}

func TestParseAnnotationsDiscarded(t *testing.T) {
	for _, san := range []string{"e4+", "e4#", "e4!", "e4?", "e4?!", "e4!!"} {
		parsed, err := ParseSan(san)
		assert.NoError(t, err, "failed for %s", san)
		assert.Equal(t, SqE4, parsed.To())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",         // empty
		"Z4",       // invalid character
		"exxd5",    // double capture marker
		"e4Sd5Dd6", // double rescue/drop marker
		"Nx",       // capture without destination
		"N",        // no destination
		"e",        // incomplete coordinate
		"ex",       // ends after capture marker
		"e4S5D",    // junk after rescue
		"e9",       // invalid rank
		"e4x",      // capture marker after complete move
		"e8=K",     // invalid promotion piece
	}
	for _, san := range cases {
		_, err := ParseSan(san)
		assert.Error(t, err, "expected error for %q", san)
		if err != nil {
			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		}
	}
}

func TestParseUci(t *testing.T) {
	parsed, err := ParseUci("e2e4")
	assert.NoError(t, err)
	assert.Equal(t, FileE, parsed.FromFile)
	assert.Equal(t, Row2, parsed.FromRow)
	assert.Equal(t, SqE4, parsed.To())
	assert.Equal(t, PtNone, parsed.PromotionTo)

	parsed, err = ParseUci("e7e8q")
	assert.NoError(t, err)
	assert.Equal(t, Queen, parsed.PromotionTo)

	_, err = ParseUci("e2")
	assert.Error(t, err)
	_, err = ParseUci("e2e9")
	assert.Error(t, err)
	_, err = ParseUci("e7e8x")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	moves := []PieceMove{
		NewMove(Pawn, SqE2, SqE4),
		NewMove(Pawn, SqE2, SqE3),
		NewMove(Knight, SqG1, SqF3),
		NewMove(Knight, SqB1, SqC3),
	}

	parsed, err := ParseSan("e4")
	assert.NoError(t, err)
	mv, err := parsed.Resolve(moves)
	assert.NoError(t, err)
	assert.Equal(t, SqE4, mv.To)

	parsed, err = ParseSan("Nf3")
	assert.NoError(t, err)
	mv, err = parsed.Resolve(moves)
	assert.NoError(t, err)
	assert.Equal(t, Knight, mv.PieceType)
	assert.Equal(t, SqF3, mv.To)

	// no match
	parsed, err = ParseSan("d4")
	assert.NoError(t, err)
	_, err = parsed.Resolve(moves)
	assert.Error(t, err)
}

func TestResolveDisambiguation(t *testing.T) {
	// two knights can reach d5 - the from file decides
	moves := []PieceMove{
		NewMove(Knight, SqC3, SqD5),
		NewMove(Knight, SqF4, SqD5),
	}

	parsed, err := ParseSan("Nd5")
	assert.NoError(t, err)
	_, err = parsed.Resolve(moves)
	assert.Error(t, err, "ambiguous without disambiguation")

	parsed, err = ParseSan("Ncd5")
	assert.NoError(t, err)
	mv, err := parsed.Resolve(moves)
	assert.NoError(t, err)
	assert.Equal(t, SqC3, mv.From)
}

func TestResolveRescueDrop(t *testing.T) {
	plain := NewMove(Queen, SqD1, SqD3)
	withRescue := NewMove(Queen, SqD1, SqD3)
	withRescue.RescuedAt = SqD4
	moves := []PieceMove{plain, withRescue}

	parsed, err := ParseSan("Qd3")
	assert.NoError(t, err)
	mv, err := parsed.Resolve(moves)
	assert.NoError(t, err)
	assert.False(t, mv.HasRescue())

	parsed, err = ParseSan("Qd3Sd4")
	assert.NoError(t, err)
	mv, err = parsed.Resolve(moves)
	assert.NoError(t, err)
	assert.Equal(t, SqD4, mv.RescuedAt)
}

func TestParsedMoveInvert(t *testing.T) {
	parsed, err := ParseSan("Nb1xe3Sf4")
	assert.NoError(t, err)
	parsed.Invert()
	assert.Equal(t, FileG, parsed.FromFile)
	assert.Equal(t, Row8, parsed.FromRow)
	assert.Equal(t, SqD6, parsed.To())
	assert.Equal(t, FileC, parsed.RescueDropFile)
	assert.Equal(t, Row5, parsed.RescueDropRow)
}
