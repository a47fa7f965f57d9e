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

import "strings"

// CastlingRights records the castling rights each player still has.
// Once a player moves their king, or the rook involved, the right is
// removed. The booleans always refer to the TRUE colors, independent
// of the always-white mirroring of the position.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights returns rights with all four castles allowed
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// None returns true when no castling right is left
func (cr CastlingRights) None() bool {
	return !cr.WhiteKingSide && !cr.WhiteQueenSide && !cr.BlackKingSide && !cr.BlackQueenSide
}

// String returns the FEN representation of the rights (e.g. "KQkq" or "-")
func (cr CastlingRights) String() string {
	if cr.None() {
		return "-"
	}
	var os strings.Builder
	if cr.WhiteKingSide {
		os.WriteString("K")
	}
	if cr.WhiteQueenSide {
		os.WriteString("Q")
	}
	if cr.BlackKingSide {
		os.WriteString("k")
	}
	if cr.BlackQueenSide {
		os.WriteString("q")
	}
	return os.String()
}

// index packs the rights into 0-15 for zobrist lookups
func (cr CastlingRights) index() int {
	i := 0
	if cr.WhiteKingSide {
		i |= 1
	}
	if cr.WhiteQueenSide {
		i |= 2
	}
	if cr.BlackKingSide {
		i |= 4
	}
	if cr.BlackQueenSide {
		i |= 8
	}
	return i
}
