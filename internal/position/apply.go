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

package position

import (
	. "github.com/rescuechess/RescueGo/internal/types"
)

// Apply performs the move on the position. The mover is always White
// (under the always-white invariant).
//
// Order of effects: remove victim, move the piece, change type on
// promotion, then rescue or drop in the landing-square neighbourhood.
// Moves with From == To (pure in-place rescue/drop) skip the move step.
//
// The move record is annotated in place with everything unapply needs
// to revert it: the captured piece's holding, the dropped piece type
// and the castling rights, en passant target and halfmove clock the
// move destroys.
func (p *Position) Apply(mv *PieceMove) error {
	pc := p.PieceAt(mv.From)
	if pc == nil {
		return &IllegalMoveError{Move: *mv, Reason: "no piece at origin"}
	}
	if pc.Color != White {
		return &IllegalMoveError{Move: *mv, Reason: "origin piece is not to move"}
	}
	if pc.Type != mv.PieceType {
		return &IllegalMoveError{Move: *mv, Reason: "piece type mismatch at origin"}
	}
	if mv.From != mv.To && p.WhiteMap.Has(mv.To) {
		return &IllegalMoveError{Move: *mv, Reason: "destination occupied by own piece"}
	}

	// record the state this move destroys
	mv.PrevCastling = p.Castling
	mv.PrevEnPassant = p.EnPassant
	mv.PrevHalfmove = p.HalfmoveClock

	switch mv.Kind {
	case MkCastle:
		if err := p.movePiece(mv.From, mv.To); err != nil {
			return &IllegalMoveError{Move: *mv, Reason: err.Error()}
		}
		if err := p.movePiece(mv.RookFrom, mv.RookTo); err != nil {
			return &IllegalMoveError{Move: *mv, Reason: err.Error()}
		}

	case MkEnPassant:
		victim := p.PieceAt(mv.EpCapture)
		if victim == nil || victim.Color != Black || victim.Type != Pawn {
			return &IllegalMoveError{Move: *mv, Reason: "no black pawn to capture en passant"}
		}
		if err := p.removePieceAt(mv.EpCapture); err != nil {
			return &IllegalMoveError{Move: *mv, Reason: err.Error()}
		}
		if err := p.movePiece(mv.From, mv.To); err != nil {
			return &IllegalMoveError{Move: *mv, Reason: err.Error()}
		}

	case MkNormal:
		if mv.Captured != PtNone {
			victim := p.PieceAt(mv.To)
			if victim == nil || victim.Color != Black {
				return &IllegalMoveError{Move: *mv, Reason: "no enemy piece to capture"}
			}
			if victim.Type != mv.Captured {
				return &IllegalMoveError{Move: *mv, Reason: "captured type mismatch"}
			}
			mv.CapturedHolding = victim.Holding
			if err := p.removePieceAt(mv.To); err != nil {
				return &IllegalMoveError{Move: *mv, Reason: err.Error()}
			}
		}
		if mv.From != mv.To {
			if err := p.movePiece(mv.From, mv.To); err != nil {
				return &IllegalMoveError{Move: *mv, Reason: err.Error()}
			}
		}
		if mv.PromotedTo != PtNone {
			p.PieceAt(mv.To).Type = mv.PromotedTo
			p.calcChanges()
		}
		if mv.HasRescue() {
			if err := p.rescuePiece(mv.To, mv.RescuedAt); err != nil {
				return &IllegalMoveError{Move: *mv, Reason: err.Error()}
			}
		}
		if mv.HasDrop() {
			mv.DroppedType = p.PieceAt(mv.To).Holding
			if err := p.dropPiece(mv.To, mv.DroppedAt); err != nil {
				return &IllegalMoveError{Move: *mv, Reason: err.Error()}
			}
		}
	}

	p.updateCastlingRights(mv)
	p.updateEnPassant(mv)

	if mv.IsCapture() || mv.PieceType == Pawn {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	return nil
}

// Unapply reverses every effect of the move using only the information
// embedded in the move record. Apply followed by Unapply is the
// identity on any reachable position.
func (p *Position) Unapply(mv *PieceMove) error {
	switch mv.Kind {
	case MkCastle:
		if err := p.movePiece(mv.RookTo, mv.RookFrom); err != nil {
			return &IllegalMoveError{Move: *mv, Reason: err.Error()}
		}
		if err := p.movePiece(mv.To, mv.From); err != nil {
			return &IllegalMoveError{Move: *mv, Reason: err.Error()}
		}

	case MkEnPassant:
		if err := p.movePiece(mv.To, mv.From); err != nil {
			return &IllegalMoveError{Move: *mv, Reason: err.Error()}
		}
		if err := p.addPiece(NewPiece(Pawn, Black, mv.EpCapture)); err != nil {
			return &IllegalMoveError{Move: *mv, Reason: err.Error()}
		}

	case MkNormal:
		if mv.HasDrop() {
			// take the dropped piece back into the carrier's holding
			if err := p.rescuePiece(mv.To, mv.DroppedAt); err != nil {
				return &IllegalMoveError{Move: *mv, Reason: err.Error()}
			}
		}
		if mv.HasRescue() {
			// put the rescued piece back where it was picked up
			if err := p.dropPiece(mv.To, mv.RescuedAt); err != nil {
				return &IllegalMoveError{Move: *mv, Reason: err.Error()}
			}
		}
		if mv.PromotedTo != PtNone {
			pc := p.PieceAt(mv.To)
			if pc == nil || pc.Type != mv.PromotedTo {
				return &IllegalMoveError{Move: *mv, Reason: "no promoted piece at destination"}
			}
			pc.Type = Pawn
			p.calcChanges()
		}
		if mv.From != mv.To {
			if err := p.movePiece(mv.To, mv.From); err != nil {
				return &IllegalMoveError{Move: *mv, Reason: err.Error()}
			}
		}
		if mv.Captured != PtNone {
			victim := NewPiece(mv.Captured, Black, mv.To)
			victim.Holding = mv.CapturedHolding
			if err := p.addPiece(victim); err != nil {
				return &IllegalMoveError{Move: *mv, Reason: err.Error()}
			}
		}
	}

	p.Castling = mv.PrevCastling
	p.EnPassant = mv.PrevEnPassant
	p.HalfmoveClock = mv.PrevHalfmove

	return nil
}

// updateCastlingRights removes rights when the king or a rook of the
// mover leaves its home square or an enemy rook is captured on its home
// square. The rights are named by TRUE colors while the board may be
// mirrored, so the home squares differ between the two encodings -
// explicit per-side squares, no arithmetic on the booleans.
func (p *Position) updateCastlingRights(mv *PieceMove) {
	if p.TrueActiveColor == White {
		switch mv.PieceType {
		case King:
			p.Castling.WhiteKingSide = false
			p.Castling.WhiteQueenSide = false
		case Rook:
			if mv.From == SqA1 {
				p.Castling.WhiteQueenSide = false
			} else if mv.From == SqH1 {
				p.Castling.WhiteKingSide = false
			}
		}
		if mv.Captured == Rook {
			// victim is truly black, board not mirrored
			if mv.To == SqA8 {
				p.Castling.BlackQueenSide = false
			} else if mv.To == SqH8 {
				p.Castling.BlackKingSide = false
			}
		}
	} else {
		// mirrored board: the true black rook from a8 sits on h1,
		// the one from h8 on a1
		switch mv.PieceType {
		case King:
			p.Castling.BlackKingSide = false
			p.Castling.BlackQueenSide = false
		case Rook:
			if mv.From == SqH1 {
				p.Castling.BlackQueenSide = false
			} else if mv.From == SqA1 {
				p.Castling.BlackKingSide = false
			}
		}
		if mv.Captured == Rook {
			// victim is truly white: a1 mirrors to h8, h1 to a8
			if mv.To == SqH8 {
				p.Castling.WhiteQueenSide = false
			} else if mv.To == SqA8 {
				p.Castling.WhiteKingSide = false
			}
		}
	}
}

// updateEnPassant records the en passant target behind a double pawn
// push and clears it after any other move
func (p *Position) updateEnPassant(mv *PieceMove) {
	p.EnPassant = SqNone
	if mv.PieceType == Pawn && mv.From.RowOf() == Row2 && mv.To.RowOf() == Row4 {
		p.EnPassant = SquareOf(mv.From.FileOf(), Row3)
	}
}
