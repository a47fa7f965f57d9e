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

// piece values in pawn units for the MVV-LVA terms
var orderValues = [PtLength]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   100,
}

// move ordering bonuses
const (
	pvBonus          = 20_000
	killer1Bonus     = 19_000
	killer2Bonus     = 18_000
	checkBonus       = 25_000
	fewEscapesBonus  = 15_000
	promotionBonus   = 15_000
	captureBase      = 10_000
	centralPawnBonus = 6_000
	underminingBonus = 8_000
)

// orderMoves sorts the legal moves in place by descending ordering
// score. The sort is stable so equal scores keep the deterministic
// generation order.
func (s *Search) orderMoves(p *position.Position, moves []PieceMove, ttMove *PieceMove, ply int) {
	type scoredMove struct {
		score int
		mv    PieceMove
	}
	scored := make([]scoredMove, len(moves))
	for i := range moves {
		scored[i] = scoredMove{score: s.scoreMove(p, &moves[i], ttMove, ply), mv: moves[i]}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	for i := range scored {
		moves[i] = scored[i].mv
	}
}

// scoreMove combines the ordering heuristics into one score:
// the transposition table move first, then killers, check-giving
// moves, captures by MVV-LVA, promotions, central pawn pushes, the
// undermining pattern and finally the history score.
func (s *Search) scoreMove(p *position.Position, mv *PieceMove, ttMove *PieceMove, ply int) int {
	// hash table move from a previous iteration - highest priority
	if ttMove != nil && mv.Equals(ttMove) {
		return pvBonus
	}

	if s.params.Features.UseKiller {
		switch s.killers.Matches(mv, ply) {
		case 1:
			return killer1Bonus
		case 2:
			return killer2Bonus
		}
	}

	score := 0

	// check-giving moves - the one place ordering pays for an apply
	m := *mv
	child := p.Clone()
	if err := child.Apply(&m); err == nil {
		child.Invert()
		if child.IsCheck() {
			score += checkBonus
			if escapes, err := movegen.LegalMoves(child, s.params.GameType); err == nil && len(escapes) <= 2 {
				score += fewEscapesBonus
			}
		}
	}

	// captures by MVV-LVA, the victim's holding counts as victim value
	if mv.IsCapture() {
		score += captureBase
		victim := mv.Captured
		if mv.Kind == MkEnPassant {
			victim = Pawn
		}
		score += 100 * orderValues[victim]
		score -= 10 * orderValues[mv.PieceType]
		score += 100 * orderValues[mv.CapturedHolding]
	}

	if mv.PieceType == Pawn {
		// central pawn pushes in opening/middlegame
		f := mv.To.FileOf()
		r := mv.To.RowOf()
		if (f == FileD || f == FileE) && (r == Row5 || r == Row4) {
			score += centralPawnBonus
		}
		score += s.undermining(p, mv)
	}

	if mv.IsPromotion() {
		score += promotionBonus
	}

	if s.params.Features.UseHistory {
		score += s.history.Score(mv)
	}

	return score
}

// undermining scores pawn moves that attack a defending black pawn
// whose removal would leave a black officer undefended
func (s *Search) undermining(p *position.Position, mv *PieceMove) int {
	target := p.PieceAt(mv.To)
	if target == nil || target.Color != Black || target.Type != Pawn {
		return 0
	}

	score := 0
	for i := range p.Pieces {
		o := &p.Pieces[i]
		if o.Color != Black || o.Type == Pawn {
			continue
		}
		// is the attacked pawn defending this officer?
		if !PawnAttacks(Black, target.Sq).Has(o.Sq) {
			continue
		}
		if !hasOtherDefender(p, o.Sq, target.Sq) {
			score += underminingBonus + int(o.Type.ValueOf())/2
		}
	}
	return score
}

// hasOtherDefender reports whether any black piece other than the one
// on exclude defends sq
func hasOtherDefender(p *position.Position, sq Square, exclude Square) bool {
	pawns := p.Map(Black, Pawn) & PawnAttacks(White, sq)
	pawns.PopSquare(exclude)
	if pawns != BbZero {
		return true
	}
	if p.Map(Black, Knight).Intersects(KnightAttacks(sq)) {
		return true
	}
	if p.Map(Black, King).Intersects(KingAttacks(sq)) {
		return true
	}
	rookish := p.Map(Black, Rook) | p.Map(Black, Queen)
	if rookish != BbZero && AttacksBb(Rook, sq, p.AllMap).Intersects(rookish) {
		return true
	}
	bishopish := p.Map(Black, Bishop) | p.Map(Black, Queen)
	if bishopish != BbZero && AttacksBb(Bishop, sq, p.AllMap).Intersects(bishopish) {
		return true
	}
	return false
}
