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

// Package movegen generates the legal moves of a position. Generation
// always enumerates moves for White - when it is really black's turn
// the position is already mirrored (see package position).
//
// Three steps: pseudo-legal generation per piece, the rescue/drop
// augmentation of the variant (suppressed in Classic mode), and the
// legality filter which rejects every move that leaves the own king
// in check.
package movegen

import (
	"github.com/rescuechess/RescueGo/internal/notation"
	"github.com/rescuechess/RescueGo/internal/position"
	. "github.com/rescuechess/RescueGo/internal/types"
)

// GameType selects the rule set of the game
type GameType uint8

// GameType constants
const (
	// Classic is standard chess - rescue/drop generation is
	// suppressed and holding fields must be empty
	Classic GameType = iota

	// Rescue is the Rescue Chess variant
	Rescue
)

// String returns the name of the game type
func (gt GameType) String() string {
	if gt == Rescue {
		return "Rescue"
	}
	return "Classic"
}

// castling masks and squares per side. Because of the always-white
// invariant "black" castling happens on the mirrored board: e/f/g on
// the logical-white first rank map to b/c/d under inversion, so the
// two encodings use differently named masks and rook squares.
var (
	whiteQueenSideEmpty = SqB1.Bitboard() | SqC1.Bitboard() | SqD1.Bitboard()
	whiteKingSideEmpty  = SqF1.Bitboard() | SqG1.Bitboard()

	// logical black, mirrored: queen side is e1+f1+g1, king side b1+c1
	blackQueenSideEmpty = SqE1.Bitboard() | SqF1.Bitboard() | SqG1.Bitboard()
	blackKingSideEmpty  = SqB1.Bitboard() | SqC1.Bitboard()
)

// LegalMoves enumerates all legal moves of the side to move in a
// deterministic order. Fails with IllegalPositionError when the side
// to move has no king.
//
// The generator is side-effect free on the source position: every
// pseudo-legal move is applied to a clone and rejected when the own
// king is in check afterwards.
func LegalMoves(p *position.Position, gt GameType) ([]PieceMove, error) {
	if p.WhiteKing() == SqNone {
		return nil, &IllegalPositionError{Reason: "no king of the side to move"}
	}

	pseudo := PseudoLegalMoves(p, gt)
	moves := make([]PieceMove, 0, len(pseudo))
	for i := range pseudo {
		mv := pseudo[i]
		child := p.Clone()
		if err := child.Apply(&mv); err != nil {
			return nil, err
		}
		if !child.IsCheck() {
			moves = append(moves, pseudo[i])
		}
	}
	return moves, nil
}

// HasLegalMove reports whether the side to move has at least one legal
// move
func HasLegalMove(p *position.Position, gt GameType) (bool, error) {
	moves, err := LegalMoves(p, gt)
	if err != nil {
		return false, err
	}
	return len(moves) > 0, nil
}

// IsCheckmate reports whether the side to move is checkmated
func IsCheckmate(p *position.Position, gt GameType) (bool, error) {
	if !p.IsCheck() {
		return false, nil
	}
	has, err := HasLegalMove(p, gt)
	if err != nil {
		return false, err
	}
	return !has, nil
}

// IsStalemate reports whether the side to move is stalemated
func IsStalemate(p *position.Position, gt GameType) (bool, error) {
	if p.IsCheck() {
		return false, nil
	}
	has, err := HasLegalMove(p, gt)
	if err != nil {
		return false, err
	}
	return !has, nil
}

// PseudoLegalMoves enumerates all moves of White without the king
// safety filter. Used by the legality filter and by the check
// detection tests.
func PseudoLegalMoves(p *position.Position, gt GameType) []PieceMove {
	moves := make([]PieceMove, 0, 64)

	for i := range p.Pieces {
		pc := &p.Pieces[i]
		if pc.Color != White {
			continue
		}

		// don't move - rescue or drop in place
		if gt == Rescue {
			addInPlaceMoves(p, pc, &moves)
		}

		// move to a square, maybe capture, maybe rescue, maybe drop
		switch pc.Type {
		case Pawn:
			addPawnMoves(p, pc, gt, &moves)
		case King:
			dests := KingAttacks(pc.Sq) &^ p.WhiteMap
			addDestinationMoves(p, pc, dests, gt, &moves)
			addCastleMoves(p, pc, &moves)
		case Knight:
			dests := KnightAttacks(pc.Sq) &^ p.WhiteMap
			addDestinationMoves(p, pc, dests, gt, &moves)
		default: // sliders
			dests := AttacksBb(pc.Type, pc.Sq, p.AllMap) &^ p.WhiteMap
			addDestinationMoves(p, pc, dests, gt, &moves)
		}
	}

	return moves
}

// addInPlaceMoves emits the zero-distance rescue and drop moves of the
// piece: stay on the square and pick up a holdable friendly cardinal
// neighbour, or stay and drop the held piece on an empty cardinal
// neighbour.
func addInPlaceMoves(p *position.Position, pc *Piece, moves *[]PieceMove) {
	neighbours := pc.Sq.CardinalNeighbours()
	if pc.Holding != PtNone {
		for empty := neighbours &^ p.AllMap; empty != BbZero; {
			n := empty.PopLsb()
			mv := NewMove(pc.Type, pc.Sq, pc.Sq)
			mv.DroppedAt = n
			*moves = append(*moves, mv)
		}
		return
	}
	for friends := neighbours & p.WhiteMap; friends != BbZero; {
		n := friends.PopLsb()
		other := p.PieceAt(n)
		if other.Holding == PtNone && pc.Type.CanHold(other.Type) {
			mv := NewMove(pc.Type, pc.Sq, pc.Sq)
			mv.RescuedAt = n
			*moves = append(*moves, mv)
		}
	}
}

// addDestinationMoves emits the moves of the piece onto each square of
// the dests bitboard plus their rescue/drop variants
func addDestinationMoves(p *position.Position, pc *Piece, dests Bitboard, gt GameType, moves *[]PieceMove) {
	for dests != BbZero {
		to := dests.PopLsb()
		mv := NewMove(pc.Type, pc.Sq, to)
		if victim := p.PieceAt(to); victim != nil {
			mv.Captured = victim.Type
			mv.CapturedHolding = victim.Holding
		}
		*moves = append(*moves, mv)
		if gt == Rescue {
			addRescueDropVariants(p, pc, mv, moves)
		}
	}
}

// addRescueDropVariants emits copies of the base move combined with a
// drop (when the piece is holding) or a rescue (when it is not) in the
// cardinal neighbourhood of the landing square. Occupancy is judged on
// the pre-move board.
func addRescueDropVariants(p *position.Position, pc *Piece, base PieceMove, moves *[]PieceMove) {
	neighbours := base.To.CardinalNeighbours()
	if pc.Holding != PtNone {
		for empty := neighbours &^ p.AllMap; empty != BbZero; {
			n := empty.PopLsb()
			mv := base
			mv.DroppedAt = n
			*moves = append(*moves, mv)
		}
		return
	}
	for friends := neighbours & p.WhiteMap; friends != BbZero; {
		n := friends.PopLsb()
		if n == pc.Sq {
			// the mover is not its own rescue candidate
			continue
		}
		other := p.PieceAt(n)
		if other.Holding == PtNone && pc.Type.CanHold(other.Type) {
			mv := base
			mv.RescuedAt = n
			*moves = append(*moves, mv)
		}
	}
}

// addPawnMoves emits pushes, double pushes, captures, en passant and
// promotions of the pawn plus the rescue/drop variants of the
// non-promotion moves
func addPawnMoves(p *position.Position, pc *Piece, gt GameType, moves *[]PieceMove) {
	sq := pc.Sq
	up := sq.To(North)
	if up == SqNone {
		return
	}

	dests := BbZero

	// single push
	if !p.AllMap.Has(up) {
		dests.PushSquare(up)
		// double push from the home rank, both squares empty
		if sq.RowOf() == Row2 {
			upup := up.To(North)
			if upup != SqNone && !p.AllMap.Has(upup) {
				dests.PushSquare(upup)
			}
		}
	}

	// diagonal captures on black occupancy
	dests |= PawnAttacks(White, sq) & p.BlackMap

	// en passant - the target square matches the recorded one and the
	// captured pawn stands beside the mover
	if p.EnPassant != SqNone && PawnAttacks(White, sq).Has(p.EnPassant) && !p.AllMap.Has(p.EnPassant) {
		captured := SquareOf(p.EnPassant.FileOf(), sq.RowOf())
		if p.Map(Black, Pawn).Has(captured) {
			mv := NewMove(Pawn, sq, p.EnPassant)
			mv.Kind = MkEnPassant
			mv.EpCapture = captured
			*moves = append(*moves, mv)
		}
	}

	for dests != BbZero {
		to := dests.PopLsb()
		if to.RowOf() == Row8 {
			// promotion - one move per target type, no rescue/drop
			// combination on the promotion rank
			for _, promo := range PromotionTypes {
				mv := NewMove(Pawn, sq, to)
				mv.PromotedTo = promo
				if victim := p.PieceAt(to); victim != nil {
					mv.Captured = victim.Type
					mv.CapturedHolding = victim.Holding
				}
				*moves = append(*moves, mv)
			}
			continue
		}
		mv := NewMove(Pawn, sq, to)
		if victim := p.PieceAt(to); victim != nil {
			mv.Captured = victim.Type
			mv.CapturedHolding = victim.Holding
		}
		*moves = append(*moves, mv)
		if gt == Rescue {
			addRescueDropVariants(p, pc, mv, moves)
		}
	}
}

// addCastleMoves emits the castle moves of the king. Requires the
// right, the squares between king and rook empty, the rook on its
// origin square and the king not in check. The two encodings use the
// per-side masks defined above.
func addCastleMoves(p *position.Position, pc *Piece, moves *[]PieceMove) {
	rooks := p.Map(White, Rook)

	if p.TrueActiveColor == White {
		if pc.Sq != SqE1 {
			return
		}
		if p.Castling.WhiteQueenSide &&
			!p.AllMap.Intersects(whiteQueenSideEmpty) &&
			rooks.Has(SqA1) && !p.IsCheck() {
			mv := NewMove(King, SqE1, SqC1)
			mv.Kind = MkCastle
			mv.RookFrom = SqA1
			mv.RookTo = SqD1
			*moves = append(*moves, mv)
		}
		if p.Castling.WhiteKingSide &&
			!p.AllMap.Intersects(whiteKingSideEmpty) &&
			rooks.Has(SqH1) && !p.IsCheck() {
			mv := NewMove(King, SqE1, SqG1)
			mv.Kind = MkCastle
			mv.RookFrom = SqH1
			mv.RookTo = SqF1
			*moves = append(*moves, mv)
		}
		return
	}

	// logical black on the mirrored board - the king sits on d1, the
	// queen side rook on h1 and the king side rook on a1
	if pc.Sq != SqD1 {
		return
	}
	if p.Castling.BlackQueenSide &&
		!p.AllMap.Intersects(blackQueenSideEmpty) &&
		rooks.Has(SqH1) && !p.IsCheck() {
		mv := NewMove(King, SqD1, SqF1)
		mv.Kind = MkCastle
		mv.RookFrom = SqH1
		mv.RookTo = SqE1
		*moves = append(*moves, mv)
	}
	if p.Castling.BlackKingSide &&
		!p.AllMap.Intersects(blackKingSideEmpty) &&
		rooks.Has(SqA1) && !p.IsCheck() {
		mv := NewMove(King, SqD1, SqB1)
		mv.Kind = MkCastle
		mv.RookFrom = SqA1
		mv.RookTo = SqC1
		*moves = append(*moves, mv)
	}
}

// PositionFromMoves builds a position by applying the given SAN moves
// from the start position, mirroring after every ply
func PositionFromMoves(sans []string, gt GameType) (*position.Position, error) {
	p := position.NewPosition()
	for _, san := range sans {
		moves, err := LegalMoves(p, gt)
		if err != nil {
			return nil, err
		}
		parsed, err := notation.ParseSan(san)
		if err != nil {
			return nil, err
		}
		if p.TrueActiveColor == Black {
			// SAN is written in the true orientation
			parsed.Invert()
		}
		mv, err := parsed.Resolve(moves)
		if err != nil {
			return nil, &notation.ParseError{Input: san, Index: 0, Msg: err.Error()}
		}
		if err := p.Apply(&mv); err != nil {
			return nil, err
		}
		if p.TrueActiveColor == Black {
			p.FullmoveNumber++
		}
		p.Invert()
	}
	return p, nil
}
