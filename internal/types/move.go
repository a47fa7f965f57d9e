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

package types

import "strings"

// MoveKind is the structural kind of a move. Captures are not a kind of
// their own - a capture is any move with Captured != PtNone (or an
// en passant). There is exactly one representation for every move.
type MoveKind uint8

// MoveKind constants
const (
	// MkNormal covers simple moves, captures, promotions and any of
	// them combined with a rescue or a drop
	MkNormal MoveKind = iota

	// MkEnPassant is a pawn capture onto the recorded en passant target
	MkEnPassant

	// MkCastle moves the king and the rook in one move
	MkCastle
)

// PieceMove is one move of one piece. The record is self-describing:
// it embeds everything needed to revert the move without consulting
// a history (captured types, rescue/drop coordinates, promotion target
// and the state the move destroyed).
type PieceMove struct {
	// the type of the moving piece
	PieceType PieceType

	// From and To squares. They are equal for a pure in-place rescue
	// or drop.
	From Square
	To   Square

	Kind MoveKind

	// Captured is the type of the captured piece, PtNone if the move
	// does not capture. For en passant it is always Pawn.
	Captured PieceType

	// CapturedHolding is the piece type the captured piece was holding
	CapturedHolding PieceType

	// PromotedTo is the piece type a pawn promotes to, PtNone otherwise
	PromotedTo PieceType

	// RescuedAt is the square of the friendly piece picked up after
	// landing, SqNone if the move does not rescue
	RescuedAt Square

	// DroppedAt is the square the held piece is put down on after
	// landing, SqNone if the move does not drop
	DroppedAt Square

	// DroppedType is the piece type that was dropped. Filled by apply
	// (from the carrier's holding) so unapply can restore it.
	DroppedType PieceType

	// EpCapture is the square of the pawn captured en passant
	EpCapture Square

	// rook movement of a castle
	RookFrom Square
	RookTo   Square

	// state destroyed by applying the move - filled in by apply,
	// read by unapply
	PrevCastling  CastlingRights
	PrevEnPassant Square
	PrevHalfmove  int
}

// NewMove creates a normal move with all optional fields empty
func NewMove(pt PieceType, from Square, to Square) PieceMove {
	return PieceMove{
		PieceType: pt,
		From:      from,
		To:        to,
		Kind:      MkNormal,
		RescuedAt: SqNone,
		DroppedAt: SqNone,
		EpCapture: SqNone,
		RookFrom:  SqNone,
		RookTo:    SqNone,

		PrevEnPassant: SqNone,
	}
}

// IsCapture reports whether the move captures an enemy piece
func (m *PieceMove) IsCapture() bool {
	return m.Captured != PtNone || m.Kind == MkEnPassant
}

// IsPromotion reports whether the move promotes a pawn
func (m *PieceMove) IsPromotion() bool {
	return m.PromotedTo != PtNone
}

// HasRescue reports whether the move picks up a friendly piece
func (m *PieceMove) HasRescue() bool {
	return m.RescuedAt != SqNone
}

// HasDrop reports whether the move puts a held piece down
func (m *PieceMove) HasDrop() bool {
	return m.DroppedAt != SqNone
}

// Equals compares the identity of two moves. The bookkeeping fields
// filled in by apply (captured holding, dropped type, destroyed state)
// are ignored so that a move compares equal before and after it has
// been applied. Used for PV, killer and TT move matching.
func (m *PieceMove) Equals(o *PieceMove) bool {
	return m.PieceType == o.PieceType &&
		m.From == o.From &&
		m.To == o.To &&
		m.Kind == o.Kind &&
		m.PromotedTo == o.PromotedTo &&
		m.RescuedAt == o.RescuedAt &&
		m.DroppedAt == o.DroppedAt
}

// Invert mirrors the move so that it can be applied from the other
// player's perspective on the inverted board.
func (m *PieceMove) Invert() {
	m.From = m.From.Invert()
	m.To = m.To.Invert()
	if m.RescuedAt != SqNone {
		m.RescuedAt = m.RescuedAt.Invert()
	}
	if m.DroppedAt != SqNone {
		m.DroppedAt = m.DroppedAt.Invert()
	}
	if m.EpCapture != SqNone {
		m.EpCapture = m.EpCapture.Invert()
	}
	if m.RookFrom != SqNone {
		m.RookFrom = m.RookFrom.Invert()
	}
	if m.RookTo != SqNone {
		m.RookTo = m.RookTo.Invert()
	}
	if m.PrevEnPassant != SqNone {
		m.PrevEnPassant = m.PrevEnPassant.Invert()
	}
}

// Inverted returns a mirrored copy of the move
func (m PieceMove) Inverted() PieceMove {
	m.Invert()
	return m
}

// String renders the move in the SAN-like notation of the engine:
// piece letter, "x" for captures, destination, "S<sq>" for a rescue,
// "D<sq>" for a drop, "=X" for promotions.
func (m PieceMove) String() string {
	var os strings.Builder
	os.WriteString(m.PieceType.SanChar())
	if m.IsCapture() {
		os.WriteString("x")
	}
	os.WriteString(m.To.String())
	if m.HasRescue() {
		os.WriteString("S")
		os.WriteString(m.RescuedAt.String())
	}
	if m.HasDrop() {
		os.WriteString("D")
		os.WriteString(m.DroppedAt.String())
	}
	if m.IsPromotion() {
		os.WriteString("=")
		os.WriteString(m.PromotedTo.Char())
	}
	return os.String()
}

// StringUci renders the move in UCI long algebraic notation
// (e.g. "e2e4", "e7e8q"). Rescue/drop annotations have no UCI
// representation and are omitted.
func (m PieceMove) StringUci() string {
	var os strings.Builder
	os.WriteString(m.From.String())
	os.WriteString(m.To.String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotedTo.Char()))
	}
	return os.String()
}
