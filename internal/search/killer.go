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
	. "github.com/rescuechess/RescueGo/internal/types"
)

// KillerStore keeps two quiet moves per ply which recently caused a
// beta cutoff at that ply. Per-search state.
type KillerStore struct {
	moves [MaxDepth][2]PieceMove
	valid [MaxDepth][2]bool
}

// NewKillerStore creates a new empty killer store
func NewKillerStore() *KillerStore {
	return &KillerStore{}
}

// Add stores the move as the first killer of the ply, shifting the
// previous first killer to the second slot. Captures are not stored.
func (k *KillerStore) Add(mv *PieceMove, ply int) {
	if ply < 0 || ply >= MaxDepth || mv.IsCapture() {
		return
	}
	if k.valid[ply][0] && k.moves[ply][0].Equals(mv) {
		return
	}
	if k.valid[ply][1] && k.moves[ply][1].Equals(mv) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.valid[ply][1] = k.valid[ply][0]
	k.moves[ply][0] = *mv
	k.valid[ply][0] = true
}

// Matches reports which killer slot of the ply the move matches:
// 1 for the first killer, 2 for the second, 0 for none
func (k *KillerStore) Matches(mv *PieceMove, ply int) int {
	if ply < 0 || ply >= MaxDepth {
		return 0
	}
	if k.valid[ply][0] && k.moves[ply][0].Equals(mv) {
		return 1
	}
	if k.valid[ply][1] && k.moves[ply][1].Equals(mv) {
		return 2
	}
	return 0
}
