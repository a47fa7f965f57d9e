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

func TestSquareLayout(t *testing.T) {
	// row 0 is at the top: a8 is square 0, h1 is square 63
	assert.Equal(t, Square(0), SqA8)
	assert.Equal(t, Square(7), SqH8)
	assert.Equal(t, Square(56), SqA1)
	assert.Equal(t, Square(63), SqH1)
	assert.Equal(t, Square(60), SqE1)
}

func TestSquareFileRow(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Row4, SqE4.RowOf())
	assert.Equal(t, FileA, SqA8.FileOf())
	assert.Equal(t, Row8, SqA8.RowOf())
	assert.Equal(t, Row1, SqH1.RowOf())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a8", SqA8.String())
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "h1", SqH1.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("e"))
	assert.Equal(t, SqNone, MakeSquare(""))
}

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqE4, SquareOf(FileE, Row4))
	assert.Equal(t, SqNone, SquareOf(FileNone, Row4))

	// every square round-trips through file and row
	for sq := SqA8; sq <= SqH1; sq++ {
		assert.Equal(t, sq, SquareOf(sq.FileOf(), sq.RowOf()))
	}
}

func TestSquareInvert(t *testing.T) {
	assert.Equal(t, SqH1, SqA8.Invert())
	assert.Equal(t, SqA8, SqH1.Invert())
	assert.Equal(t, SqD5, SqE4.Invert())
	assert.Equal(t, SqD1, SqE8.Invert())

	// invert is its own inverse
	for sq := SqA8; sq <= SqH1; sq++ {
		assert.Equal(t, sq, sq.Invert().Invert())
	}
}

func TestSquareTo(t *testing.T) {
	// north decreases the index towards rank 8
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqF4, SqE4.To(East))
	assert.Equal(t, SqD4, SqE4.To(West))
	assert.Equal(t, SqF5, SqE4.To(Northeast))
	assert.Equal(t, SqD3, SqE4.To(Southwest))

	// edges
	assert.Equal(t, SqNone, SqA8.To(North))
	assert.Equal(t, SqNone, SqA8.To(West))
	assert.Equal(t, SqNone, SqH1.To(South))
	assert.Equal(t, SqNone, SqH1.To(East))
	assert.Equal(t, SqNone, SqH4.To(Northeast))
	assert.Equal(t, SqNone, SqA4.To(Southwest))
}

func TestFileRowStrings(t *testing.T) {
	assert.Equal(t, "a", FileA.String())
	assert.Equal(t, "h", FileH.String())
	assert.Equal(t, "8", Row8.String())
	assert.Equal(t, "1", Row1.String())
}
