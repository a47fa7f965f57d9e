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

// Square represents exactly one square on a chess board.
// The board is stored row-major with row 0 at the top, so square 0
// is a8 and square 63 is h1.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA8   Square = iota // 0
	SqB8   Square = iota // 1
	SqC8   Square = iota
	SqD8   Square = iota
	SqE8   Square = iota
	SqF8   Square = iota
	SqG8   Square = iota
	SqH8   Square = iota
	SqA7   Square = iota // 8
	SqB7   Square = iota
	SqC7   Square = iota
	SqD7   Square = iota
	SqE7   Square = iota
	SqF7   Square = iota
	SqG7   Square = iota
	SqH7   Square = iota
	SqA6   Square = iota // 16
	SqB6   Square = iota
	SqC6   Square = iota
	SqD6   Square = iota
	SqE6   Square = iota
	SqF6   Square = iota
	SqG6   Square = iota
	SqH6   Square = iota
	SqA5   Square = iota // 24
	SqB5   Square = iota
	SqC5   Square = iota
	SqD5   Square = iota
	SqE5   Square = iota
	SqF5   Square = iota
	SqG5   Square = iota
	SqH5   Square = iota
	SqA4   Square = iota // 32
	SqB4   Square = iota
	SqC4   Square = iota
	SqD4   Square = iota
	SqE4   Square = iota
	SqF4   Square = iota
	SqG4   Square = iota
	SqH4   Square = iota
	SqA3   Square = iota // 40
	SqB3   Square = iota
	SqC3   Square = iota
	SqD3   Square = iota
	SqE3   Square = iota
	SqF3   Square = iota
	SqG3   Square = iota
	SqH3   Square = iota
	SqA2   Square = iota // 48
	SqB2   Square = iota
	SqC2   Square = iota
	SqD2   Square = iota
	SqE2   Square = iota
	SqF2   Square = iota
	SqG2   Square = iota
	SqH2   Square = iota
	SqA1   Square = iota // 56
	SqB1   Square = iota
	SqC1   Square = iota
	SqD1   Square = iota
	SqE1   Square = iota
	SqF1   Square = iota
	SqG1   Square = iota
	SqH1   Square = iota // 63
	SqNone Square = iota // 64
)

// File represents a file a-h of the board as 0-7
type File uint8

// File constants
const (
	FileA File = iota
	FileB File = iota
	FileC File = iota
	FileD File = iota
	FileE File = iota
	FileF File = iota
	FileG File = iota
	FileH File = iota
	FileNone
)

// Row represents a row of the board counted from the top:
// row 0 is rank 8, row 7 is rank 1.
type Row uint8

// Row constants - named after the chess rank they represent
const (
	Row8 Row = iota
	Row7 Row = iota
	Row6 Row = iota
	Row5 Row = iota
	Row4 Row = iota
	Row3 Row = iota
	Row2 Row = iota
	Row1 Row = iota
	RowNone
)

// IsValid checks a value of type File if it represents a valid file (a-h)
func (f File) IsValid() bool {
	return f < FileNone
}

// String returns the file letter of the file (e.g. "a")
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + f))
}

// IsValid checks a value of type Row if it represents a valid row
func (r Row) IsValid() bool {
	return r < RowNone
}

// String returns the chess rank digit of the row (e.g. "4")
func (r Row) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('8' - r))
}

// IsValid checks a value of type square if it represents a valid
// square on a chess board (e.g. sq < 64).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RowOf returns the row of the square (0 = rank 8)
func (sq Square) RowOf() Row {
	return Row(sq >> 3)
}

// SquareOf returns a square from file and row.
// Returns SqNone for invalid files or rows.
func SquareOf(f File, r Row) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((uint8(r) << 3) + uint8(f))
}

// MakeSquare returns a square based on the string given or SqNone if
// no valid square could be read from the string
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0] - 'a'
	r := s[1] - '1'
	if f > 7 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Row(7-r))
}

// String returns a string of the file letter and rank number (e.g. e5).
// If the sq is not a valid square returns "-"
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RowOf().String()
}

// Invert mirrors the square through the board center:
// xy(x,y) becomes xy(7-x,7-y). In this layout that is 63-sq.
func (sq Square) Invert() Square {
	if !sq.IsValid() {
		return SqNone
	}
	return Square(63) - sq
}

// To returns the square on the chess board in the given direction or
// SqNone if the step would leave the board.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	switch d {
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	t := int(sq) + int(d)
	if t < 0 || t >= SqLength {
		return SqNone
	}
	return Square(t)
}

// CardinalNeighbours returns the bitboard of the up to four cardinal
// neighbour squares of sq. This is the neighbourhood used by the
// rescue and drop rules.
func (sq Square) CardinalNeighbours() Bitboard {
	return cardinalNeighbours[sq]
}
