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

package search

import (
	"strings"
	"time"

	. "github.com/rescuechess/RescueGo/internal/types"
)

// Result is the outcome of a search: the best move of the deepest
// fully completed iteration plus the principal variation and counters.
type Result struct {
	BestMove    PieceMove
	HasBestMove bool
	Score       Value
	Depth       int
	Pv          []PieceMove

	NodesSearched   uint64
	CachedPositions uint64
	Pruned          uint64
	SearchTime      time.Duration
}

// PvString renders the principal variation as space separated moves
func (r *Result) PvString() string {
	var os strings.Builder
	for i := range r.Pv {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(r.Pv[i].String())
	}
	return os.String()
}

// String returns a string representation of the result
func (r *Result) String() string {
	if !r.HasBestMove {
		return out.Sprintf("no best move (score %d, depth %d, nodes %d)", r.Score, r.Depth, r.NodesSearched)
	}
	return out.Sprintf("best %s score %d depth %d nodes %d cached %d pruned %d time %d ms pv [%s]",
		r.BestMove.String(), r.Score, r.Depth, r.NodesSearched, r.CachedPositions,
		r.Pruned, r.SearchTime.Milliseconds(), r.PvString())
}
