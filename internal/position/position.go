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

// Package position implements the board model of the engine: the piece
// list with its derived bitboards and reverse lookup, the always-white
// mirroring, the apply/unapply move transitions and the FEN and EPD
// serialization boundaries.
//
// The single most important invariant: the side to move is ALWAYS
// White. When it is really black's turn the stored position is the
// mirror image (every square mapped through 7-x,7-y, colors swapped)
// and TrueActiveColor records the original side. This halves the
// generator code paths.
package position

import (
	"fmt"
	"strings"

	. "github.com/rescuechess/RescueGo/internal/types"
)

// Position is a single game position. Contains the piece list as the
// source of truth plus derived indices which are kept as cached
// invariants: color/type bitboards and the square to piece index
// lookup. Re-deriving the caches from the piece list always yields
// the same values.
type Position struct {
	// the pieces on the board
	Pieces []Piece

	// the castling rights, always named by the TRUE colors
	Castling CastlingRights

	// the en passant target square in board (mirrored) coordinates,
	// SqNone if there is none
	EnPassant Square

	// number of halfmoves since the last capture or pawn move
	HalfmoveClock int

	// number of the full move, starting at 1
	FullmoveNumber int

	// the color that is really to move. The stored board is mirrored
	// whenever this is Black.
	TrueActiveColor Color

	// derived caches, rebuilt by calcChanges after every mutation
	WhiteMap Bitboard
	BlackMap Bitboard
	AllMap   Bitboard

	typeMaps  [ColorLength][PtLength]Bitboard
	lookup    [SqLength]int8
	whiteKing Square
}

// calcChanges recalculates the bitboards, the square lookup and the
// king square from the piece list. Must be called whenever a piece
// has changed.
func (p *Position) calcChanges() {
	p.WhiteMap = BbZero
	p.BlackMap = BbZero
	for c := White; c < ColorLength; c++ {
		for pt := PtNone; pt < PtLength; pt++ {
			p.typeMaps[c][pt] = BbZero
		}
	}
	for i := range p.lookup {
		p.lookup[i] = -1
	}
	p.whiteKing = SqNone

	for i := range p.Pieces {
		pc := &p.Pieces[i]
		if pc.Color == White {
			p.WhiteMap.PushSquare(pc.Sq)
			if pc.Type == King {
				p.whiteKing = pc.Sq
			}
		} else {
			p.BlackMap.PushSquare(pc.Sq)
		}
		p.typeMaps[pc.Color][pc.Type].PushSquare(pc.Sq)
		p.lookup[pc.Sq] = int8(i)
	}
	p.AllMap = p.WhiteMap | p.BlackMap
}

// Clone returns a deep copy of the position
func (p *Position) Clone() *Position {
	c := *p
	c.Pieces = make([]Piece, len(p.Pieces))
	copy(c.Pieces, p.Pieces)
	return &c
}

// PieceAt returns a pointer to the piece at the square or nil if the
// square is empty. O(1) via the square lookup. The pointer is only
// valid until the next mutation.
func (p *Position) PieceAt(sq Square) *Piece {
	if !sq.IsValid() {
		return nil
	}
	if idx := p.lookup[sq]; idx >= 0 {
		return &p.Pieces[idx]
	}
	return nil
}

// Map returns the bitboard of all pieces of the given color and type
func (p *Position) Map(c Color, pt PieceType) Bitboard {
	return p.typeMaps[c][pt]
}

// WhiteKing returns the square of the white (side to move) king or
// SqNone if there is no white king on the board
func (p *Position) WhiteKing() Square {
	return p.whiteKing
}

// Invert mirrors the position: makes the black pieces white and vice
// versa, maps every square through (7-x, 7-y) and toggles the true
// active color. Invert is the exact inverse of itself.
func (p *Position) Invert() {
	for i := range p.Pieces {
		p.Pieces[i].Color = p.Pieces[i].Color.Flip()
		p.Pieces[i].Sq = p.Pieces[i].Sq.Invert()
	}
	if p.EnPassant != SqNone {
		p.EnPassant = p.EnPassant.Invert()
	}
	p.TrueActiveColor = p.TrueActiveColor.Flip()
	p.calcChanges()
}

// Inverted returns a mirrored copy of the position
func (p *Position) Inverted() *Position {
	c := p.Clone()
	c.Invert()
	return c
}

// IsCheck reports whether the white (side to move) king is attacked.
// The test is attacker-oriented: from the king square outward via the
// step tables and the magic sliding lookups. Returns false when there
// is no white king.
func (p *Position) IsCheck() bool {
	king := p.whiteKing
	if king == SqNone {
		return false
	}
	// a black pawn attacks the king from the squares a white pawn on
	// the king square would attack
	if p.typeMaps[Black][Pawn].Intersects(PawnAttacks(White, king)) {
		return true
	}
	if p.typeMaps[Black][Knight].Intersects(KnightAttacks(king)) {
		return true
	}
	if p.typeMaps[Black][King].Intersects(KingAttacks(king)) {
		return true
	}
	rookish := p.typeMaps[Black][Rook] | p.typeMaps[Black][Queen]
	if rookish != BbZero && AttacksBb(Rook, king, p.AllMap).Intersects(rookish) {
		return true
	}
	bishopish := p.typeMaps[Black][Bishop] | p.typeMaps[Black][Queen]
	if bishopish != BbZero && AttacksBb(Bishop, king, p.AllMap).Intersects(bishopish) {
		return true
	}
	return false
}

// Hash returns the Zobrist key of the position over piece placement,
// holdings, castling rights and the en passant target. The side to
// move is implied by the always-white invariant.
func (p *Position) Hash() Key {
	var h Key
	for i := range p.Pieces {
		pc := &p.Pieces[i]
		h ^= ZobristPiece(pc.Color, pc.Type, pc.Sq)
		if pc.Holding != PtNone {
			h ^= ZobristHolding(pc.Color, pc.Holding, pc.Sq)
		}
	}
	h ^= ZobristCastling(p.Castling)
	h ^= ZobristEnPassant(p.EnPassant)
	return h
}

// movePiece moves a piece from one square to another. The target
// square must be empty.
func (p *Position) movePiece(from Square, to Square) error {
	if p.AllMap.Has(to) {
		return fmt.Errorf("move target %s occupied", to)
	}
	pc := p.PieceAt(from)
	if pc == nil {
		return fmt.Errorf("no piece at %s", from)
	}
	pc.Sq = to
	p.calcChanges()
	return nil
}

// removePieceAt removes the piece at the square
func (p *Position) removePieceAt(sq Square) error {
	idx := p.lookup[sq]
	if idx < 0 {
		return fmt.Errorf("no piece at %s", sq)
	}
	p.Pieces = append(p.Pieces[:idx], p.Pieces[idx+1:]...)
	p.calcChanges()
	return nil
}

// addPiece adds a piece to the board. The square must be empty.
func (p *Position) addPiece(pc Piece) error {
	if p.AllMap.Has(pc.Sq) {
		return fmt.Errorf("add target %s occupied", pc.Sq)
	}
	p.Pieces = append(p.Pieces, pc)
	p.calcChanges()
	return nil
}

// rescuePiece lets the piece at rescuer pick up the piece at rescued.
// The rescuer must not already hold a piece and its type must be able
// to hold the rescued type.
func (p *Position) rescuePiece(rescuer Square, rescued Square) error {
	rp := p.PieceAt(rescuer)
	if rp == nil {
		return fmt.Errorf("no rescuer at %s", rescuer)
	}
	tp := p.PieceAt(rescued)
	if tp == nil {
		return fmt.Errorf("no piece to rescue at %s", rescued)
	}
	if rp.Holding != PtNone {
		return fmt.Errorf("rescuer already holding a piece")
	}
	if tp.Holding != PtNone {
		return fmt.Errorf("cannot rescue a piece that is holding another")
	}
	if rp.Color != tp.Color {
		return fmt.Errorf("cannot rescue an enemy piece")
	}
	if !rp.Type.CanHold(tp.Type) {
		return fmt.Errorf("%s cannot hold %s", rp.Type, tp.Type)
	}
	held := tp.Type
	if err := p.removePieceAt(rescued); err != nil {
		return err
	}
	// pointers are invalid after the removal
	p.PieceAt(rescuer).Holding = held
	return nil
}

// dropPiece lets the piece at carrier put its held piece down on the
// empty square dropSq
func (p *Position) dropPiece(carrier Square, dropSq Square) error {
	cp := p.PieceAt(carrier)
	if cp == nil {
		return fmt.Errorf("no carrier at %s", carrier)
	}
	if cp.Holding == PtNone {
		return fmt.Errorf("carrier not holding a piece")
	}
	if p.AllMap.Has(dropSq) {
		return fmt.Errorf("drop target %s occupied", dropSq)
	}
	held := cp.Holding
	cp.Holding = PtNone
	color := cp.Color
	return p.addPiece(NewPiece(held, color, dropSq))
}

// StrBoard returns the board as an 8x8 ASCII grid with rank 8 on top.
// Held pieces are not rendered.
func (p *Position) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Row8; r <= Row1; r++ {
		for f := FileA; f <= FileH; f++ {
			if pc := p.PieceAt(SquareOf(f, r)); pc != nil {
				os.WriteString("| " + pc.FenChar() + " ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// String returns the FEN of the position
func (p *Position) String() string {
	return p.ToFen()
}
