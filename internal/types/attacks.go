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

// Pre computed step tables for the non sliding pieces and the cardinal
// neighbour map of the rescue/drop rules. Built once at process start
// in the package init, read-only afterwards.
var (
	knightAttacks      [SqLength]Bitboard
	kingAttacks        [SqLength]Bitboard
	pawnAttacks        [ColorLength][SqLength]Bitboard
	cardinalNeighbours [SqLength]Bitboard
)

// KnightAttacks returns the up to 8 L-shape target squares of a knight
// on the given square
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the up to 8 neighbour squares of a king on the
// given square
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the two capture squares of a pawn of the given
// color on the given square. White pawns attack towards rank 8 (up),
// black pawns towards rank 1.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// knight step offsets as (file delta, row delta)
var knightSteps = [8][2]int{
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
}

// initAttacks pre computes the step tables
func initAttacks() {
	for sq := SqA8; sq <= SqH1; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RowOf())

		// knight
		for _, s := range knightSteps {
			knightAttacks[sq] |= stepBb(f+s[0], r+s[1])
		}

		// king - all 8 neighbours
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df == 0 && dr == 0 {
					continue
				}
				kingAttacks[sq] |= stepBb(f+df, r+dr)
			}
		}

		// pawns - white attacks up (row decreasing), black down
		pawnAttacks[White][sq] = stepBb(f-1, r-1) | stepBb(f+1, r-1)
		pawnAttacks[Black][sq] = stepBb(f-1, r+1) | stepBb(f+1, r+1)

		// cardinal neighbours for rescue/drop
		cardinalNeighbours[sq] = stepBb(f-1, r) | stepBb(f+1, r) | stepBb(f, r-1) | stepBb(f, r+1)
	}
}

// stepBb returns the bitboard of the square at (file, row) or BbZero
// when the coordinates are off the board
func stepBb(f int, r int) Bitboard {
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return BbZero
	}
	return SquareOf(File(f), Row(r)).Bitboard()
}
