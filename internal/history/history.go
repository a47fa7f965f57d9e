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

// Package history provides the history heuristic table updated during
// search to give the move ordering a notion of which quiet moves have
// been good in this search so far.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/rescuechess/RescueGo/internal/types"
)

var out = message.NewPrinter(language.English)

// History tracks the success of [piece type][to square] combinations.
// Deeper cutoffs count more. Per-search state - not shared.
type History struct {
	Success [PtLength][SqLength]int64
	Tried   [PtLength][SqLength]int64
}

// NewHistory creates a new History instance
func NewHistory() *History {
	return &History{}
}

// Update records an attempt of the move at the given depth and whether
// it caused a beta cutoff
func (h *History) Update(mv *PieceMove, depth int, causedCutoff bool) {
	h.Tried[mv.PieceType][mv.To]++
	if causedCutoff {
		h.Success[mv.PieceType][mv.To] += int64(depth)
	}
}

// Score returns the scaled history score of the move for move
// ordering: successes weighted by depth, divided by the attempts.
func (h *History) Score(mv *PieceMove) int {
	tried := h.Tried[mv.PieceType][mv.To]
	if tried == 0 {
		return 0
	}
	return int((h.Success[mv.PieceType][mv.To] * 2000) / tried)
}

// String prints the non-zero entries of the table
func (h *History) String() string {
	sb := strings.Builder{}
	for pt := Pawn; pt <= King; pt++ {
		for sq := SqA8; sq <= SqH1; sq++ {
			if h.Tried[pt][sq] == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("%s->%s: success=%d tried=%d\n",
				pt.String(), sq.String(), h.Success[pt][sq], h.Tried[pt][sq]))
		}
	}
	return sb.String()
}
