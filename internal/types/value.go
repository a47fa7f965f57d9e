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

// Value is a score in centipawns, positive favouring white
// (the side to move under the always-white invariant).
type Value int

// score constants
const (
	// ValueDraw is the score of a stalemate or drawn position
	ValueDraw Value = 0

	// ValueCheckmate is the absolute score of a mate. Mates found in
	// quiescence are attenuated by the remaining depth so that shorter
	// mates score higher.
	ValueCheckmate Value = 1_000_000

	// ValueInitialBound is the practical infinity of the search window
	ValueInitialBound Value = 2_000_000
)

// pieceValues in centipawns per piece type. The king value dwarfs the
// sum of all other material so that no exchange sequence can make
// losing the king look attractive.
var pieceValues = [PtLength]Value{
	PtNone: 0,
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
	King:   20_000,
}

// ValueOf returns the material value of the piece type in centipawns
func (pt PieceType) ValueOf() Value {
	return pieceValues[pt]
}
