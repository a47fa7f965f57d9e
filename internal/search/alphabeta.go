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
	"github.com/rescuechess/RescueGo/internal/movegen"
	"github.com/rescuechess/RescueGo/internal/position"
	"github.com/rescuechess/RescueGo/internal/transpositiontable"
	. "github.com/rescuechess/RescueGo/internal/types"
)

// searchResult is the internal result of one alpha-beta node: the
// principal variation below the node and its score
type searchResult struct {
	pv    []PieceMove
	score Value
}

// alphaBeta is the principal variation search. Fail-hard in the move
// loop: a cutoff returns beta, otherwise alpha is returned. Transposition
// table hits, mate scores and quiescence leaves are returned as they are
// and can lie outside [alpha, beta].
//
// Contract per node: cooperative timeout sample first, then the
// transposition table probe, mate detection, the quiescence leaf,
// stalemate, and finally the ordered move loop with late move
// reductions and null-window re-searches.
func (s *Search) alphaBeta(p *position.Position, alpha Value, beta Value, depth int, ply int) (searchResult, error) {
	if s.timeUp() {
		return searchResult{}, ErrTimeout
	}

	originalAlpha := alpha
	key := p.Hash()

	if s.params.Features.UseTT {
		if e := s.tt.Probe(key, depth, alpha, beta); e != nil {
			s.stats.CachedPositions++
			var pv []PieceMove
			if e.HasMove() {
				pv = []PieceMove{e.Move}
			}
			return searchResult{pv: pv, score: e.Score}, nil
		}
	}

	s.stats.NodesVisited++

	mate, err := movegen.IsCheckmate(p, s.params.GameType)
	if err != nil {
		return searchResult{}, err
	}
	if mate {
		return searchResult{score: -ValueCheckmate}, nil
	}

	if depth == 0 {
		score, err := s.quiescence(p, alpha, beta, s.params.QuiescenceDepth)
		if err != nil {
			return searchResult{}, err
		}
		return searchResult{score: score}, nil
	}

	moves, err := movegen.LegalMoves(p, s.params.GameType)
	if err != nil {
		return searchResult{}, err
	}
	if len(moves) == 0 {
		// not mate (checked above), so stalemate
		return searchResult{score: ValueDraw}, nil
	}

	// the stored best move of a previous (shallower) search of this
	// position leads the ordering
	var ttMove *PieceMove
	if s.params.Features.UseTT {
		if e := s.tt.GetEntry(key); e != nil && e.HasMove() {
			ttMove = &e.Move
		}
	}
	s.orderMoves(p, moves, ttMove, ply)

	var pv []PieceMove

	for i := range moves {
		mv := moves[i]

		child := p.Clone()
		if err := child.Apply(&mv); err != nil {
			return searchResult{}, err
		}
		child.Invert()
		// after the mirror the next side to move is "white" again
		givesCheck := child.IsCheck()

		var score Value
		haveScore := false

		// Late move reduction: late, quiet, non-checking moves are
		// searched with reduced depth and a null window first. A
		// reduced score above alpha forces the full re-search.
		if s.params.Features.UseLmr &&
			depth >= 3 && i >= 4 && !mv.IsCapture() && !givesCheck {
			reduction := 1
			if i > 6 {
				reduction = 2
			}
			s.stats.LmrReductions++
			reduced, err := s.alphaBeta(child, -alpha-1, -alpha, depth-1-reduction, ply+1)
			if err != nil {
				return searchResult{}, err
			}
			if rs := -reduced.score; rs <= alpha {
				score = rs
				haveScore = true
			} else {
				s.stats.LmrResearches++
			}
		}

		var childPv []PieceMove
		if !haveScore {
			res, err := s.alphaBeta(child, -beta, -alpha, depth-1, ply+1)
			if err != nil {
				return searchResult{}, err
			}
			score = -res.score
			childPv = res.pv
		}

		if score >= beta {
			s.stats.Pruned++
			if s.params.Features.UseTT {
				s.tt.Put(key, mv, depth, beta, transpositiontable.TypeLowerBound, originalAlpha, beta)
				s.stats.TtStores++
			}
			if s.params.Features.UseKiller {
				s.killers.Add(&mv, ply)
			}
			if s.params.Features.UseHistory {
				s.history.Update(&mv, depth, true)
			}
			return searchResult{score: beta}, nil
		}

		if s.params.Features.UseHistory && !mv.IsCapture() {
			s.history.Update(&mv, depth, false)
		}

		if score > alpha {
			alpha = score
			pv = append([]PieceMove{moves[i]}, childPv...)
		}
	}

	// classify the node by whether alpha moved
	nodeType := transpositiontable.TypeExact
	if alpha <= originalAlpha {
		nodeType = transpositiontable.TypeUpperBound
	}
	if s.params.Features.UseTT {
		var best PieceMove
		if len(pv) > 0 {
			best = pv[0]
		}
		s.tt.Put(key, best, depth, alpha, nodeType, originalAlpha, beta)
		s.stats.TtStores++
	}

	return searchResult{pv: pv, score: alpha}, nil
}
