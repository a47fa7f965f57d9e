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
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit set with one bit for each square on the board.
// Bit i corresponds to square i (a8 = bit 0, h1 = bit 63).
type Bitboard uint64

// various constant bitboards for convenience
//noinspection ALL
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	// with row 0 at the top the low byte is rank 8
	Rank8_Bb Bitboard = 0xFF
	Rank7_Bb Bitboard = Rank8_Bb << (8 * 1)
	Rank6_Bb Bitboard = Rank8_Bb << (8 * 2)
	Rank5_Bb Bitboard = Rank8_Bb << (8 * 3)
	Rank4_Bb Bitboard = Rank8_Bb << (8 * 4)
	Rank3_Bb Bitboard = Rank8_Bb << (8 * 5)
	Rank2_Bb Bitboard = Rank8_Bb << (8 * 6)
	Rank1_Bb Bitboard = Rank8_Bb << (8 * 7)
)

// Bitboard returns a Bitboard with only the bit of the square set.
func (sq Square) Bitboard() Bitboard {
	return sqBb[sq]
}

// Has tests if the bit of the square is set
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bitboard() != 0
}

// With returns a Bitboard with the bit of the square additionally set
func (b Bitboard) With(sq Square) Bitboard {
	return b | sq.Bitboard()
}

// Without returns a Bitboard with the bit of the square cleared
func (b Bitboard) Without(sq Square) Bitboard {
	return b &^ sq.Bitboard()
}

// PushSquare sets the corresponding bit of the bitboard for the square
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bitboard()
}

// PopSquare removes the corresponding bit of the bitboard for the square
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bitboard()
}

// Intersects tests if the two bitboards have at least one common bit set
func (b Bitboard) Intersects(o Bitboard) bool {
	return b&o != 0
}

// PopCount returns the number of set bits
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant bit of the 64-bit Bitboard.
// This translates directly to the Square which is returned.
// If the bitboard is empty SqNone will be returned.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and removes it from the bitboard.
// The given bitboard is changed directly. This is the iteration
// primitive of the engine:
//
//	for b != BbZero { sq := b.PopLsb(); ... }
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// Squares returns the set squares of the bitboard as a slice in
// ascending square order.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.PopCount())
	for tmp := b; tmp != BbZero; {
		sqs = append(sqs, tmp.PopLsb())
	}
	return sqs
}

// Str returns a string representation of the 64 bits
func (b Bitboard) Str() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StrBoard returns a string representation of the Bitboard
// as a board of 8x8 squares with rank 8 on top
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Row8; r <= Row1; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StrGrp returns a string representation of the 64 bits grouped in 8.
// Order is LSB to MSB ==> A8 B8 ... G1 H1
func (b Bitboard) StrGrp() string {
	var os strings.Builder
	for i := 0; i < SqLength; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", b))
	return os.String()
}

// ParseGrid parses a debug ASCII grid into a Bitboard. The grid is 8
// whitespace-separated rows of 8 characters, top row first. '1' and 'x'
// mark set squares, '.' and '0' empty ones. Used by tests.
func ParseGrid(s string) (Bitboard, error) {
	b := BbZero
	i := 0
	for _, c := range s {
		switch c {
		case '1', 'x':
			if i >= SqLength {
				return BbZero, fmt.Errorf("grid has more than 64 squares")
			}
			b.PushSquare(Square(i))
			i++
		case '.', '0':
			if i >= SqLength {
				return BbZero, fmt.Errorf("grid has more than 64 squares")
			}
			i++
		case ' ', '\t', '\n', '\r':
			// ignore
		default:
			return BbZero, fmt.Errorf("invalid character %q in bitboard grid", c)
		}
	}
	if i != SqLength {
		return BbZero, fmt.Errorf("grid has %d squares, need 64", i)
	}
	return b, nil
}

// FileDistance returns the absolute distance in squares between two files
func FileDistance(f1 File, f2 File) int {
	d := int(f2) - int(f1)
	if d < 0 {
		return -d
	}
	return d
}

// RowDistance returns the absolute distance in squares between two rows
func RowDistance(r1 Row, r2 Row) int {
	d := int(r2) - int(r1)
	if d < 0 {
		return -d
	}
	return d
}

// SquareDistance returns the absolute distance in king moves between two squares
func SquareDistance(s1 Square, s2 Square) int {
	return squareDistance[s1][s2]
}

// fileBb returns the bitboard of the file of the square
func (sq Square) fileBb() Bitboard {
	return FileA_Bb << sq.FileOf()
}

// rowBb returns the bitboard of the row of the square
func (sq Square) rowBb() Bitboard {
	return Rank8_Bb << (8 * uint8(sq.RowOf()))
}

// pre computed square bitboards and distances
var (
	sqBb           [SqLength]Bitboard
	squareDistance [SqLength][SqLength]int
)

// initBb pre computes various bitboards to avoid runtime calculation
func initBb() {
	for sq := SqA8; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(uint64(1) << sq)
	}
	for s1 := SqA8; s1 <= SqH1; s1++ {
		for s2 := SqA8; s2 <= SqH1; s2++ {
			if s1 != s2 {
				fd := FileDistance(s1.FileOf(), s2.FileOf())
				rd := RowDistance(s1.RowOf(), s2.RowOf())
				if fd > rd {
					squareDistance[s1][s2] = fd
				} else {
					squareDistance[s1][s2] = rd
				}
			}
		}
	}
}
