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

// Package evaluator computes the static score of a position in
// centipawns, positive favouring white (the side to move under the
// always-white invariant).
//
// Material and piece-square bonuses are always counted - held pieces
// count their material for the carrier. Everything else is a feature:
// a pure function of the position that can be toggled via the Features
// struct without ever affecting legality, only search choice.
package evaluator

import (
	"github.com/rescuechess/RescueGo/internal/config"
	"github.com/rescuechess/RescueGo/internal/position"
	. "github.com/rescuechess/RescueGo/internal/types"
)

// Features selects the evaluation terms beyond material and
// piece-square bonuses
type Features struct {
	BishopPair        bool
	PawnStructure     bool
	KingSafety        bool
	Mobility          bool
	PieceCoordination bool
	PawnControl       bool
	PieceProtection   bool
}

// DefaultFeatures returns the feature selection from the configuration
func DefaultFeatures() Features {
	return Features{
		BishopPair:        config.Settings.Eval.UseBishopPair,
		PawnStructure:     config.Settings.Eval.UsePawnStructure,
		KingSafety:        config.Settings.Eval.UseKingSafety,
		Mobility:          config.Settings.Eval.UseMobility,
		PieceCoordination: config.Settings.Eval.UsePieceCoordination,
		PawnControl:       config.Settings.Eval.UsePawnControl,
		PieceProtection:   config.Settings.Eval.UsePieceProtection,
	}
}

// Evaluator computes static evaluations. Stateless apart from the
// feature selection - safe to share within one search.
type Evaluator struct {
	features Features
}

// NewEvaluator creates a new evaluator with the given features
func NewEvaluator(features Features) *Evaluator {
	return &Evaluator{features: features}
}

// the four central squares
var centerBb = SqD4.Bitboard() | SqE4.Bitboard() | SqD5.Bitboard() | SqE5.Bitboard()

// Evaluate returns the static score of the position
func (e *Evaluator) Evaluate(p *position.Position) Value {
	var score Value

	for i := range p.Pieces {
		pc := &p.Pieces[i]
		v := pc.Type.ValueOf() + PosValue(pc.Type, pc.Sq, pc.Color)
		if pc.Holding != PtNone {
			v += pc.Holding.ValueOf()
		}
		if pc.Color == White {
			score += v
		} else {
			score -= v
		}
	}

	if e.features.BishopPair {
		score += e.bishopPair(p, White) - e.bishopPair(p, Black)
	}
	if e.features.PawnStructure {
		score += e.pawnStructure(p, White) - e.pawnStructure(p, Black)
	}
	if e.features.KingSafety {
		score += e.kingSafety(p, White) - e.kingSafety(p, Black)
	}
	if e.features.Mobility {
		score += e.mobility(p, White) - e.mobility(p, Black)
	}
	if e.features.PieceCoordination {
		score += e.coordination(p, White) - e.coordination(p, Black)
	}
	if e.features.PawnControl {
		score += e.pawnControl(p, White) - e.pawnControl(p, Black)
	}
	if e.features.PieceProtection {
		score += e.protection(p, White) - e.protection(p, Black)
	}

	return score
}

// bishopPair awards a bonus when the side still has both bishops
func (e *Evaluator) bishopPair(p *position.Position, c Color) Value {
	if p.Map(c, Bishop).PopCount() >= 2 {
		return Value(config.Settings.Eval.BishopPairBonus)
	}
	return 0
}

// kingSafety counts the own pawns shielding the king's neighbourhood
func (e *Evaluator) kingSafety(p *position.Position, c Color) Value {
	king := p.Map(c, King)
	if king == BbZero {
		return 0
	}
	shield := KingAttacks(king.Lsb()) & p.Map(c, Pawn)
	return Value(shield.PopCount() * config.Settings.Eval.KingShieldBonus)
}

// mobility counts the reachable squares of the officers
func (e *Evaluator) mobility(p *position.Position, c Color) Value {
	own := p.WhiteMap
	if c == Black {
		own = p.BlackMap
	}
	count := 0
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		for b := p.Map(c, pt); b != BbZero; {
			sq := b.PopLsb()
			count += (AttacksBb(pt, sq, p.AllMap) &^ own).PopCount()
		}
	}
	return Value(count * config.Settings.Eval.MobilityBonus)
}

// coordination awards officers standing on squares defended by another
// own piece
func (e *Evaluator) coordination(p *position.Position, c Color) Value {
	count := 0
	for i := range p.Pieces {
		pc := &p.Pieces[i]
		if pc.Color != c || pc.Type == Pawn || pc.Type == King {
			continue
		}
		if attackedBy(p, c, pc.Sq) {
			count++
		}
	}
	return Value(count * config.Settings.Eval.CoordinationBonus)
}

// pawnControl awards pawn attacks on the four central squares
func (e *Evaluator) pawnControl(p *position.Position, c Color) Value {
	count := 0
	for b := centerBb; b != BbZero; {
		sq := b.PopLsb()
		count += (pawnAttackersOf(p, c, sq)).PopCount()
	}
	return Value(count * config.Settings.Eval.PawnControlBonus)
}

// protection awards officers defended by an own pawn
func (e *Evaluator) protection(p *position.Position, c Color) Value {
	count := 0
	for i := range p.Pieces {
		pc := &p.Pieces[i]
		if pc.Color != c || pc.Type == Pawn || pc.Type == King {
			continue
		}
		if pawnAttackersOf(p, c, pc.Sq) != BbZero {
			count++
		}
	}
	return Value(count * config.Settings.Eval.ProtectionBonus)
}

// pawnAttackersOf returns the pawns of color c attacking sq. A white
// pawn attacks sq from the down-diagonals of sq, so the attacker set
// is the reversed pawn attack map.
func pawnAttackersOf(p *position.Position, c Color, sq Square) Bitboard {
	return p.Map(c, Pawn) & PawnAttacks(c.Flip(), sq)
}

// attackedBy reports whether any piece of color c attacks sq
// (attacker-oriented queries from sq outward)
func attackedBy(p *position.Position, c Color, sq Square) bool {
	if pawnAttackersOf(p, c, sq) != BbZero {
		return true
	}
	if p.Map(c, Knight).Intersects(KnightAttacks(sq)) {
		return true
	}
	if p.Map(c, King).Intersects(KingAttacks(sq)) {
		return true
	}
	rookish := p.Map(c, Rook) | p.Map(c, Queen)
	if rookish != BbZero && AttacksBb(Rook, sq, p.AllMap).Intersects(rookish) {
		return true
	}
	bishopish := p.Map(c, Bishop) | p.Map(c, Queen)
	if bishopish != BbZero && AttacksBb(Bishop, sq, p.AllMap).Intersects(bishopish) {
		return true
	}
	return false
}
