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

// PieceType is a type for the six piece types. PtNone is the zero value
// and doubles as the "no piece" / "not holding" sentinel.
type PieceType uint8

// PieceType constants
const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// PromotionTypes are the piece types a pawn may promote to, in the
// order the move generator emits them.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// IsValid checks whether the piece type is a valid piece type
// (PtNone is not valid in this sense)
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// CanHold implements the rescue rule table: which piece types a carrier
// of this type may pick up and carry.
//
//	Pawn:   Pawn
//	Knight: Pawn, Knight
//	Bishop: Pawn, Bishop
//	Rook:   Pawn, Rook
//	Queen:  Pawn, Bishop, Knight, Rook
//	King:   any
func (pt PieceType) CanHold(other PieceType) bool {
	if !other.IsValid() {
		return false
	}
	switch pt {
	case Pawn:
		return other == Pawn
	case Knight:
		return other == Pawn || other == Knight
	case Bishop:
		return other == Pawn || other == Bishop
	case Rook:
		return other == Pawn || other == Rook
	case Queen:
		return other == Pawn || other == Bishop || other == Knight || other == Rook
	case King:
		return true
	}
	return false
}

// Char returns the algebraic upper case letter of the piece type
// (pawn is "P", PtNone is "-")
func (pt PieceType) Char() string {
	switch pt {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return "-"
}

// SanChar returns the SAN letter of the piece type - the empty string
// for pawns
func (pt PieceType) SanChar() string {
	if pt == Pawn {
		return ""
	}
	return pt.Char()
}

// PieceTypeFromChar maps an upper or lower case piece letter to its
// piece type. Returns PtNone for anything else.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return PtNone
}

// String returns the name of the piece type
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "None"
}
