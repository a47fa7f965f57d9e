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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/rescuechess/RescueGo/internal/types"
)

func TestHistoryUpdateAndScore(t *testing.T) {
	h := NewHistory()
	mv := NewMove(Knight, SqB1, SqC3)

	assert.Equal(t, 0, h.Score(&mv))

	// a try without a cutoff keeps the score at zero
	h.Update(&mv, 5, false)
	assert.Equal(t, 0, h.Score(&mv))

	// a cutoff at depth 5: success 5, tried 2 -> 5*2000/2
	h.Update(&mv, 5, true)
	assert.Equal(t, 5000, h.Score(&mv))

	// deeper cutoffs weigh more
	h2 := NewHistory()
	h2.Update(&mv, 10, true)
	assert.Equal(t, 20000, h2.Score(&mv))
}

func TestHistoryKeyedByPieceAndTarget(t *testing.T) {
	h := NewHistory()
	knight := NewMove(Knight, SqB1, SqC3)
	pawn := NewMove(Pawn, SqB2, SqC3)

	h.Update(&knight, 6, true)

	// same target square but different piece type - separate entry
	assert.Greater(t, h.Score(&knight), 0)
	assert.Equal(t, 0, h.Score(&pawn))

	// same piece type from a different origin shares the entry
	otherKnight := NewMove(Knight, SqD5, SqC3)
	assert.Equal(t, h.Score(&knight), h.Score(&otherKnight))
}
