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

// Statistics collects counters over one search (all iterations)
type Statistics struct {
	NodesVisited       uint64
	Evaluations        uint64
	CachedPositions    uint64
	Pruned             uint64
	LmrReductions      uint64
	LmrResearches      uint64
	AspirationFailures uint64
	TtStores           uint64
}

// add accumulates the counters of one iteration
func (s *Statistics) add(o *Statistics) {
	s.NodesVisited += o.NodesVisited
	s.Evaluations += o.Evaluations
	s.CachedPositions += o.CachedPositions
	s.Pruned += o.Pruned
	s.LmrReductions += o.LmrReductions
	s.LmrResearches += o.LmrResearches
	s.AspirationFailures += o.AspirationFailures
	s.TtStores += o.TtStores
}

// String returns a string representation of the statistics
func (s *Statistics) String() string {
	return out.Sprintf("nodes %d evals %d cached %d pruned %d lmr %d/%d re-searched window fails %d tt stores %d",
		s.NodesVisited, s.Evaluations, s.CachedPositions, s.Pruned,
		s.LmrReductions, s.LmrResearches, s.AspirationFailures, s.TtStores)
}
