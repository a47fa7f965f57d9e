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

// Piece is one piece on the board. Holding is the Rescue Chess payload:
// the type of a friendly piece this piece has picked up and carries
// until it is dropped. Holding is PtNone when nothing is carried and
// may only be non-empty if Type.CanHold(Holding) is true.
type Piece struct {
	Type    PieceType
	Color   Color
	Sq      Square
	Holding PieceType
}

// NewPiece creates a piece without holding
func NewPiece(pt PieceType, c Color, sq Square) Piece {
	return Piece{Type: pt, Color: c, Sq: sq, Holding: PtNone}
}

// FenChar returns the FEN letter of the piece - upper case for white,
// lower case for black
func (p Piece) FenChar() string {
	c := p.Type.Char()
	if p.Color == Black {
		return string(c[0] | 0x20)
	}
	return c
}

// String returns the FEN letter of the piece plus the held piece
// behind an "x" if the piece is holding one (e.g. "Pxp" style without
// the color swap - held pieces share the carrier's color).
func (p Piece) String() string {
	s := p.FenChar()
	if p.Holding != PtNone {
		held := Piece{Type: p.Holding, Color: p.Color}
		s += "x" + held.FenChar()
	}
	return s
}
