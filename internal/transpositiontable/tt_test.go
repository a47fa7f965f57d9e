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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/rescuechess/RescueGo/internal/types"
)

func testMove() PieceMove {
	return NewMove(Knight, SqG1, SqF3)
}

func TestTtNewAndResize(t *testing.T) {
	tt := NewTtTable(2)
	assert.Greater(t, int(tt.Capacity()), 0)
	assert.Equal(t, uint64(0), tt.Len())

	// power of two capacity
	assert.Equal(t, uint64(0), tt.Capacity()&(tt.Capacity()-1))

	tt.Resize(0)
	assert.Equal(t, uint64(0), tt.Capacity())
	// a zero sized table swallows puts and never hits
	tt.Put(Key(1), testMove(), 5, 100, TypeExact, -200, 200)
	assert.Nil(t, tt.Probe(Key(1), 1, -200, 200))
}

func TestTtPutAndGet(t *testing.T) {
	tt := NewTtTable(2)
	key := Key(0x12345678)

	tt.Put(key, testMove(), 5, 77, TypeExact, -100, 100)
	assert.Equal(t, uint64(1), tt.Len())

	e := tt.GetEntry(key)
	assert.NotNil(t, e)
	assert.Equal(t, Value(77), e.Score)
	assert.Equal(t, int8(5), e.Depth)
	assert.Equal(t, TypeExact, e.Type)
	assert.True(t, e.HasMove())
	assert.True(t, e.Move.Equals(&PieceMove{PieceType: Knight, From: SqG1, To: SqF3, RescuedAt: SqNone, DroppedAt: SqNone}))

	// different key in the same slot is not returned
	assert.Nil(t, tt.GetEntry(key+Key(tt.Capacity())))
}

func TestTtProbeContract(t *testing.T) {
	tt := NewTtTable(2)
	key := Key(42)

	// miss on empty
	assert.Nil(t, tt.Probe(key, 1, -100, 100))

	// stored depth below requested depth - miss
	tt.Put(key, testMove(), 3, 50, TypeExact, -100, 100)
	assert.Nil(t, tt.Probe(key, 4, -100, 100))
	assert.NotNil(t, tt.Probe(key, 3, -100, 100))
	assert.NotNil(t, tt.Probe(key, 2, -100, 100))

	// Exact hits only when the score is inside (alpha, beta)
	assert.NotNil(t, tt.Probe(key, 3, 0, 100))
	assert.Nil(t, tt.Probe(key, 3, 50, 100), "score == alpha is a miss")
	assert.Nil(t, tt.Probe(key, 3, 60, 100))
	assert.Nil(t, tt.Probe(key, 3, -100, 50), "score == beta is a miss")
}

func TestTtProbeBounds(t *testing.T) {
	tt := NewTtTable(2)

	// LowerBound hits when score >= beta
	lb := Key(7)
	tt.Put(lb, testMove(), 3, 80, TypeLowerBound, -100, 80)
	assert.NotNil(t, tt.Probe(lb, 3, -100, 80))
	assert.NotNil(t, tt.Probe(lb, 3, -100, 50))
	assert.Nil(t, tt.Probe(lb, 3, -100, 90), "beta above stored score - miss")

	// UpperBound hits when score <= alpha
	ub := Key(9)
	tt.Put(ub, testMove(), 3, -80, TypeUpperBound, -80, 100)
	assert.NotNil(t, tt.Probe(ub, 3, -80, 100))
	assert.NotNil(t, tt.Probe(ub, 3, -50, 100))
	assert.Nil(t, tt.Probe(ub, 3, -90, 100), "alpha below stored score - miss")
}

func TestTtReplacementPolicy(t *testing.T) {
	tt := NewTtTable(2)
	key := Key(1234)

	tt.Put(key, testMove(), 5, 10, TypeExact, -100, 100)

	// shallower entries never replace
	tt.Put(key, testMove(), 3, 99, TypeExact, -100, 100)
	assert.Equal(t, Value(10), tt.GetEntry(key).Score)

	// deeper entries replace
	tt.Put(key, testMove(), 7, 20, TypeUpperBound, -100, 100)
	assert.Equal(t, Value(20), tt.GetEntry(key).Score)

	// equal depth: Exact replaces a bound type
	tt.Put(key, testMove(), 7, 30, TypeExact, -100, 100)
	assert.Equal(t, Value(30), tt.GetEntry(key).Score)

	// equal depth: a bound does not replace Exact
	tt.Put(key, testMove(), 7, 40, TypeLowerBound, -100, 100)
	assert.Equal(t, Value(30), tt.GetEntry(key).Score)
}

func TestTtClear(t *testing.T) {
	tt := NewTtTable(2)
	tt.Put(Key(1), testMove(), 5, 10, TypeExact, -100, 100)
	assert.Equal(t, uint64(1), tt.Len())

	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Nil(t, tt.GetEntry(Key(1)))
	assert.Equal(t, uint64(0), tt.Stats.Puts)
}

func TestTtStatsCounting(t *testing.T) {
	tt := NewTtTable(2)
	key := Key(77)

	tt.Put(key, testMove(), 3, 50, TypeExact, -100, 100)
	tt.Probe(key, 3, 0, 100)   // hit
	tt.Probe(key, 9, 0, 100)   // miss - too shallow
	tt.Probe(Key(78), 1, 0, 1) // miss - not stored

	assert.Equal(t, uint64(1), tt.Stats.Puts)
	assert.Equal(t, uint64(3), tt.Stats.Probes)
	assert.Equal(t, uint64(1), tt.Stats.Hits)
	assert.Equal(t, uint64(2), tt.Stats.Misses)
}
