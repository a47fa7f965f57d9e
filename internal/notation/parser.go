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

// Package notation parses the two move formats that cross the engine
// boundary: the SAN-like notation with the rescue/drop suffixes of
// Rescue Chess ("Nb1xe3Sf4", "e4Dd5") and UCI long algebraic notation
// ("e2e4", "e7e8q"). Parsing produces a structured intent which is
// resolved against the legal moves of a position.
package notation

import (
	"fmt"
	"strings"

	. "github.com/rescuechess/RescueGo/internal/types"
)

// ParseError is returned for malformed move notation. Index points at
// the offending character of the input.
type ParseError struct {
	Input string
	Index int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q at %d: %s", e.Input, e.Index, e.Msg)
}

// RescueDrop marks whether a parsed move carries a rescue or a drop
// suffix
type RescueDrop uint8

// RescueDrop constants
const (
	NoRescueDrop RescueDrop = iota
	Rescue
	Drop
)

// ParsedMove is the structured intent a notation string parses into.
// Partial origin coordinates (file-only, rank-only) are kept for
// disambiguation against the legal move list.
type ParsedMove struct {
	PieceType PieceType

	FromFile File // FileNone when not given
	FromRow  Row  // RowNone when not given
	ToFile   File
	ToRow    Row

	IsCapture bool

	RescueDrop     RescueDrop
	RescueDropFile File
	RescueDropRow  Row

	PromotionTo PieceType
}

// To returns the destination square of the parsed move
func (pm *ParsedMove) To() Square {
	return SquareOf(pm.ToFile, pm.ToRow)
}

// parser states
type parserState uint8

const (
	stateStart parserState = iota
	stateAfterPiece
	stateAfterPosition
	stateAfterCapture
	stateAfterRescueOrDrop
	stateAfterPromotion
	stateDone
)

// parser is the state machine for the SAN-like notation. It tracks the
// last position seen - whether it is the origin or the destination is
// only known once the next character arrives.
type parser struct {
	input  string
	state  parserState
	result ParsedMove

	lastFile File
	lastRow  Row
}

func newParser(input string) *parser {
	return &parser{
		input: input,
		state: stateStart,
		result: ParsedMove{
			PieceType:      Pawn,
			FromFile:       FileNone,
			FromRow:        RowNone,
			RescueDropFile: FileNone,
			RescueDropRow:  RowNone,
		},
		lastFile: FileNone,
		lastRow:  RowNone,
	}
}

func fileOf(c byte) File {
	return File(c - 'a')
}

// rowOf converts a rank digit to the internal top-down row
func rowOf(c byte) Row {
	return Row(7 - (c - '1'))
}

func isFileChar(c byte) bool { return c >= 'a' && c <= 'h' }
func isRowChar(c byte) bool  { return c >= '1' && c <= '8' }
func isSuffixChar(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

func (ps *parser) errorf(i int, format string, a ...interface{}) error {
	return &ParseError{Input: ps.input, Index: i, Msg: fmt.Sprintf(format, a...)}
}

func (ps *parser) feed(i int, c byte) error {
	switch ps.state {

	case stateStart:
		switch {
		case c == 'N' || c == 'B' || c == 'R' || c == 'Q' || c == 'K':
			ps.result.PieceType = PieceTypeFromChar(c)
			ps.state = stateAfterPiece
		case isFileChar(c):
			ps.lastFile = fileOf(c)
			ps.state = stateAfterPosition
		default:
			return ps.errorf(i, "unexpected character %q", c)
		}

	case stateAfterPiece:
		switch {
		case isFileChar(c):
			ps.lastFile = fileOf(c)
			ps.state = stateAfterPosition
		case isRowChar(c):
			ps.lastRow = rowOf(c)
			ps.state = stateAfterPosition
		case c == 'x':
			ps.result.IsCapture = true
			ps.state = stateAfterCapture
		default:
			return ps.errorf(i, "unexpected character %q after piece", c)
		}

	case stateAfterPosition:
		switch {
		case isFileChar(c):
			// the position seen so far was the origin
			ps.result.FromFile = ps.lastFile
			ps.result.FromRow = ps.lastRow
			ps.lastFile = fileOf(c)
			ps.lastRow = RowNone
		case isRowChar(c):
			if ps.lastRow != RowNone {
				return ps.errorf(i, "unexpected second rank")
			}
			ps.lastRow = rowOf(c)
		case c == 'x':
			if ps.result.IsCapture {
				return ps.errorf(i, "unexpected second capture marker")
			}
			ps.result.FromFile = ps.lastFile
			ps.result.FromRow = ps.lastRow
			ps.result.IsCapture = true
			ps.lastFile = FileNone
			ps.lastRow = RowNone
			ps.state = stateAfterCapture
		case c == 'S' || c == 'D':
			if ps.result.RescueDrop != NoRescueDrop {
				return ps.errorf(i, "unexpected second rescue/drop marker")
			}
			if ps.lastFile == FileNone || ps.lastRow == RowNone {
				return ps.errorf(i, "incomplete position before rescue/drop")
			}
			ps.result.ToFile = ps.lastFile
			ps.result.ToRow = ps.lastRow
			ps.lastFile = FileNone
			ps.lastRow = RowNone
			if c == 'S' {
				ps.result.RescueDrop = Rescue
			} else {
				ps.result.RescueDrop = Drop
			}
			ps.state = stateAfterRescueOrDrop
		case c == '=':
			if ps.lastFile == FileNone || ps.lastRow == RowNone {
				return ps.errorf(i, "incomplete position before promotion")
			}
			ps.result.ToFile = ps.lastFile
			ps.result.ToRow = ps.lastRow
			ps.state = stateAfterPromotion
		case isSuffixChar(c):
			if ps.lastFile == FileNone || ps.lastRow == RowNone {
				return ps.errorf(i, "incomplete position before annotation")
			}
			ps.result.ToFile = ps.lastFile
			ps.result.ToRow = ps.lastRow
			ps.state = stateDone
		default:
			return ps.errorf(i, "unexpected character %q", c)
		}

	case stateAfterCapture:
		switch {
		case isFileChar(c):
			ps.lastFile = fileOf(c)
			ps.state = stateAfterPosition
		default:
			return ps.errorf(i, "expected file after capture")
		}

	case stateAfterRescueOrDrop:
		switch {
		case isFileChar(c):
			ps.result.RescueDropFile = fileOf(c)
		case isRowChar(c):
			ps.result.RescueDropRow = rowOf(c)
		case isSuffixChar(c):
			ps.state = stateDone
		default:
			return ps.errorf(i, "unexpected character %q after rescue/drop", c)
		}

	case stateAfterPromotion:
		switch c {
		case 'Q', 'R', 'B', 'N':
			ps.result.PromotionTo = PieceTypeFromChar(c)
			ps.state = stateDone
		default:
			return ps.errorf(i, "invalid promotion piece %q", c)
		}

	case stateDone:
		if !isSuffixChar(c) {
			return ps.errorf(i, "unexpected character %q after move", c)
		}
	}
	return nil
}

// finalize commits a trailing position as the destination and checks
// the machine ended in an accepting state
func (ps *parser) finalize() (*ParsedMove, error) {
	if ps.state == stateAfterPosition {
		if ps.lastFile == FileNone || ps.lastRow == RowNone {
			return nil, ps.errorf(len(ps.input), "incomplete position at end of input")
		}
		ps.result.ToFile = ps.lastFile
		ps.result.ToRow = ps.lastRow
		ps.state = stateDone
	}
	if ps.state != stateDone && ps.state != stateAfterRescueOrDrop {
		return nil, ps.errorf(len(ps.input), "incomplete move notation")
	}
	return &ps.result, nil
}

// ParseSan parses a move in the SAN-like notation of the engine.
// Suffix annotations (+ # ! ?) are accepted and discarded.
func ParseSan(notation string) (*ParsedMove, error) {
	ps := newParser(strings.TrimSpace(notation))
	for i := 0; i < len(ps.input); i++ {
		if err := ps.feed(i, ps.input[i]); err != nil {
			return nil, err
		}
	}
	return ps.finalize()
}

// ParseUci parses a move in UCI long algebraic notation:
// [a-h][1-8][a-h][1-8] with an optional promotion letter.
func ParseUci(uci string) (*ParsedMove, error) {
	uci = strings.TrimSpace(uci)
	if len(uci) < 4 || len(uci) > 5 {
		return nil, &ParseError{Input: uci, Index: 0, Msg: "UCI move must be 4 or 5 characters"}
	}
	if !isFileChar(uci[0]) || !isRowChar(uci[1]) || !isFileChar(uci[2]) || !isRowChar(uci[3]) {
		return nil, &ParseError{Input: uci, Index: 0, Msg: "invalid square coordinates"}
	}
	pm := &ParsedMove{
		FromFile:       fileOf(uci[0]),
		FromRow:        rowOf(uci[1]),
		ToFile:         fileOf(uci[2]),
		ToRow:          rowOf(uci[3]),
		RescueDropFile: FileNone,
		RescueDropRow:  RowNone,
	}
	if len(uci) == 5 {
		switch uci[4] {
		case 'q', 'r', 'b', 'n':
			pm.PromotionTo = PieceTypeFromChar(uci[4])
		default:
			return nil, &ParseError{Input: uci, Index: 4, Msg: "invalid promotion letter"}
		}
	}
	return pm, nil
}

// Invert mirrors all coordinates of the parsed move so it can be
// matched against the moves of the mirrored board
func (pm *ParsedMove) Invert() {
	if pm.FromFile != FileNone {
		pm.FromFile = 7 - pm.FromFile
	}
	if pm.FromRow != RowNone {
		pm.FromRow = 7 - pm.FromRow
	}
	pm.ToFile = 7 - pm.ToFile
	pm.ToRow = 7 - pm.ToRow
	if pm.RescueDropFile != FileNone {
		pm.RescueDropFile = 7 - pm.RescueDropFile
	}
	if pm.RescueDropRow != RowNone {
		pm.RescueDropRow = 7 - pm.RescueDropRow
	}
}

// Matches reports whether the legal move mv fits the parsed intent,
// honouring partial origin coordinates
func (pm *ParsedMove) Matches(mv *PieceMove) bool {
	// UCI gives no piece type - PtNone matches any
	if pm.PieceType != PtNone && mv.PieceType != pm.PieceType {
		return false
	}
	if mv.To != pm.To() {
		return false
	}
	if pm.FromFile != FileNone && mv.From.FileOf() != pm.FromFile {
		return false
	}
	if pm.FromRow != RowNone && mv.From.RowOf() != pm.FromRow {
		return false
	}
	if pm.PieceType != PtNone && pm.IsCapture != mv.IsCapture() {
		return false
	}
	switch pm.RescueDrop {
	case Rescue:
		if !mv.HasRescue() {
			return false
		}
		if pm.RescueDropFile != FileNone && mv.RescuedAt.FileOf() != pm.RescueDropFile {
			return false
		}
		if pm.RescueDropRow != RowNone && mv.RescuedAt.RowOf() != pm.RescueDropRow {
			return false
		}
	case Drop:
		if !mv.HasDrop() {
			return false
		}
		if pm.RescueDropFile != FileNone && mv.DroppedAt.FileOf() != pm.RescueDropFile {
			return false
		}
		if pm.RescueDropRow != RowNone && mv.DroppedAt.RowOf() != pm.RescueDropRow {
			return false
		}
	case NoRescueDrop:
		if mv.HasRescue() || mv.HasDrop() {
			return false
		}
	}
	return mv.PromotedTo == pm.PromotionTo
}

// Resolve finds the single legal move the parsed intent describes.
// Fails when the intent matches no move or stays ambiguous.
func (pm *ParsedMove) Resolve(moves []PieceMove) (PieceMove, error) {
	var found *PieceMove
	count := 0
	for i := range moves {
		if pm.Matches(&moves[i]) {
			found = &moves[i]
			count++
		}
	}
	switch count {
	case 0:
		return PieceMove{}, fmt.Errorf("no legal move matches")
	case 1:
		return *found, nil
	default:
		return PieceMove{}, fmt.Errorf("ambiguous move: %d legal moves match", count)
	}
}
