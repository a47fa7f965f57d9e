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

// Key is a 64-bit Zobrist hash of a position. The hash incorporates
// piece placement, holdings, castling rights and the en passant target.
// The side to move is implied by the always-white invariant.
type Key uint64

// zobrist random keys
var (
	zobristPiece    [ColorLength][PtLength][SqLength]Key
	zobristHolding  [ColorLength][PtLength][SqLength]Key
	zobristCastling [16]Key
	zobristEp       [SqLength]Key
)

// ZobristPiece returns the hash key of a piece of the given color and
// type on the given square
func ZobristPiece(c Color, pt PieceType, sq Square) Key {
	return zobristPiece[c][pt][sq]
}

// ZobristHolding returns the hash key of a held piece of the given
// type carried by a piece of the given color on the given square
func ZobristHolding(c Color, pt PieceType, sq Square) Key {
	return zobristHolding[c][pt][sq]
}

// ZobristCastling returns the hash key of a castling rights state
func ZobristCastling(cr CastlingRights) Key {
	return zobristCastling[cr.index()]
}

// ZobristEnPassant returns the hash key of an en passant target square.
// Returns 0 for SqNone.
func ZobristEnPassant(sq Square) Key {
	if !sq.IsValid() {
		return 0
	}
	return zobristEp[sq]
}

// initZobrist fills the zobrist key tables from a fixed seed so that
// hashes are stable across runs
func initZobrist() {
	rng := NewPrnG(1070372)
	for c := White; c < ColorLength; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := SqA8; sq <= SqH1; sq++ {
				zobristPiece[c][pt][sq] = Key(rng.Rand64())
				zobristHolding[c][pt][sq] = Key(rng.Rand64())
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = Key(rng.Rand64())
	}
	for sq := SqA8; sq <= SqH1; sq++ {
		zobristEp[sq] = Key(rng.Rand64())
	}
}
