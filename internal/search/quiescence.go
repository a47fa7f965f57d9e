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
	"sort"

	"github.com/rescuechess/RescueGo/internal/movegen"
	"github.com/rescuechess/RescueGo/internal/position"
	. "github.com/rescuechess/RescueGo/internal/types"
)

// quiescence resolves the leaves of the alpha-beta search with a
// capture-and-promotion-only search so that positions in the middle of
// an exchange are not evaluated statically.
//
// Protocol: stand-pat evaluation first; fail high when it beats beta;
// otherwise it raises alpha and bounds the result from below. Only
// captures and promotions are searched, ordered by MVV-LVA. A mate
// found here is attenuated by the remaining depth so shorter mates
// score higher.
func (s *Search) quiescence(p *position.Position, alpha Value, beta Value, depth int) (Value, error) {
	s.stats.NodesVisited++

	// cooperative timeout - sampled periodically, not every node
	if s.stats.NodesVisited&1023 == 0 && s.timeUp() {
		return 0, ErrTimeout
	}

	mate, err := movegen.IsCheckmate(p, s.params.GameType)
	if err != nil {
		return 0, err
	}
	if mate {
		return -(ValueCheckmate + Value(depth)), nil
	}

	standPat := s.eval.Evaluate(p)
	s.stats.Evaluations++

	if standPat >= beta {
		return beta, nil
	}
	if standPat > alpha {
		alpha = standPat
	}
	if depth == 0 {
		return standPat, nil
	}

	moves, err := movegen.LegalMoves(p, s.params.GameType)
	if err != nil {
		return 0, err
	}

	// keep only the tactical moves
	tactical := moves[:0]
	for i := range moves {
		if moves[i].IsCapture() || moves[i].IsPromotion() {
			tactical = append(tactical, moves[i])
		}
	}
	if len(tactical) == 0 {
		return standPat, nil
	}

	sort.SliceStable(tactical, func(i, j int) bool {
		return mvvLva(&tactical[i]) > mvvLva(&tactical[j])
	})

	for i := range tactical {
		mv := tactical[i]
		child := p.Clone()
		if err := child.Apply(&mv); err != nil {
			return 0, err
		}
		child.Invert()

		score, err := s.quiescence(child, -beta, -alpha, depth-1)
		if err != nil {
			return 0, err
		}
		score = -score

		if score >= beta {
			s.stats.Pruned++
			return beta, nil
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha, nil
}

// mvvLva scores a tactical move for the quiescence ordering: most
// valuable victim first, least valuable aggressor as tie break, the
// victim's holding counts extra
func mvvLva(mv *PieceMove) int {
	victim := mv.Captured
	if mv.Kind == MkEnPassant {
		victim = Pawn
	}
	score := 10*orderValues[victim] - orderValues[mv.PieceType]
	score += orderValues[mv.CapturedHolding]
	return score
}
