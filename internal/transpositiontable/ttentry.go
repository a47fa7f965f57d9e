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

package transpositiontable

import (
	"unsafe"

	. "github.com/rescuechess/RescueGo/internal/types"
)

// NodeType classifies the bound a stored score represents
type NodeType uint8

// NodeType constants
const (
	// TypeNone marks an unused entry
	TypeNone NodeType = iota

	// TypeExact is a score from a full window search
	TypeExact

	// TypeLowerBound is a fail-high score (score >= beta at store time)
	TypeLowerBound

	// TypeUpperBound is a fail-low score (score <= alpha at store time)
	TypeUpperBound
)

// String returns a string representation of the node type
func (nt NodeType) String() string {
	switch nt {
	case TypeExact:
		return "Exact"
	case TypeLowerBound:
		return "LowerBound"
	case TypeUpperBound:
		return "UpperBound"
	}
	return "None"
}

// TtEntry is one transposition table entry. Move carries the best move
// found for the position (PieceType PtNone when there is none). Alpha
// and Beta record the search window at store time.
type TtEntry struct {
	Key   Key
	Move  PieceMove
	Score Value
	Alpha Value
	Beta  Value
	Depth int8
	Type  NodeType
}

// TtEntrySize is the size in bytes of one TtEntry
const TtEntrySize = uint64(unsafe.Sizeof(TtEntry{}))

// HasMove reports whether the entry carries a best move
func (e *TtEntry) HasMove() bool {
	return e.Move.PieceType != PtNone
}
