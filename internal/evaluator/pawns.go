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

package evaluator

import (
	"github.com/rescuechess/RescueGo/internal/config"
	"github.com/rescuechess/RescueGo/internal/position"
	. "github.com/rescuechess/RescueGo/internal/types"
)

// pawnStructure penalizes doubled and isolated pawns of the given color
func (e *Evaluator) pawnStructure(p *position.Position, c Color) Value {
	pawns := p.Map(c, Pawn)
	if pawns == BbZero {
		return 0
	}

	var penalty int

	for f := FileA; f <= FileH; f++ {
		fileBb := FileA_Bb << f
		onFile := (pawns & fileBb).PopCount()
		if onFile == 0 {
			continue
		}

		// every pawn beyond the first on a file is doubled
		if onFile > 1 {
			penalty += (onFile - 1) * config.Settings.Eval.DoubledPawnPenalty
		}

		// isolated - no own pawn on an adjacent file
		adjacent := BbZero
		if f > FileA {
			adjacent |= FileA_Bb << (f - 1)
		}
		if f < FileH {
			adjacent |= FileA_Bb << (f + 1)
		}
		if pawns&adjacent == BbZero {
			penalty += onFile * config.Settings.Eval.IsolaniPenalty
		}
	}

	return Value(-penalty)
}
