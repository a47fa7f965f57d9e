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
	"fmt"
	"strconv"
	"strings"

	. "github.com/rescuechess/RescueGo/internal/types"
)

// StartFen is the FEN of the standard chess start position
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseError is returned for malformed FEN or EPD input
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s in %q", e.Msg, e.Input)
}

// NewPosition creates the standard chess start position
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen creates a position from a FEN string.
//
// Beyond standard FEN the placement accepts the holding extension of
// Rescue Chess: a piece letter followed by "x" and a second letter
// means the first piece is holding the second (case follows the
// carrier's color). Both active colors are accepted - on "b" the
// position is stored mirrored with TrueActiveColor set to Black.
func NewPositionFen(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, &ParseError{Input: fen, Msg: "missing piece placement"}
	}

	p := &Position{
		EnPassant:       SqNone,
		FullmoveNumber:  1,
		TrueActiveColor: White,
	}

	// field 1 - piece placement incl. holdings
	sq := SqA8
	holding := false
	for i := 0; i < len(fields[0]); i++ {
		c := fields[0][i]
		switch {
		case c == '/':
			continue
		case c >= '1' && c <= '8':
			if holding {
				return nil, &ParseError{Input: fen, Msg: "holding marker not followed by a piece"}
			}
			sq += Square(c - '0')
		case c == 'x':
			if len(p.Pieces) == 0 || holding {
				return nil, &ParseError{Input: fen, Msg: "holding marker without carrier"}
			}
			holding = true
		default:
			pt := PieceTypeFromChar(c)
			if pt == PtNone {
				return nil, &ParseError{Input: fen, Msg: fmt.Sprintf("invalid character %q in placement", c)}
			}
			if holding {
				carrier := &p.Pieces[len(p.Pieces)-1]
				if !carrier.Type.CanHold(pt) {
					return nil, &ParseError{Input: fen, Msg: fmt.Sprintf("%s cannot hold %s", carrier.Type, pt)}
				}
				carrier.Holding = pt
				holding = false
				continue
			}
			if sq > SqH1 {
				return nil, &ParseError{Input: fen, Msg: "placement has more than 64 squares"}
			}
			color := White
			if c >= 'a' {
				color = Black
			}
			p.Pieces = append(p.Pieces, NewPiece(pt, color, sq))
			sq++
		}
	}
	if holding {
		return nil, &ParseError{Input: fen, Msg: "dangling holding marker"}
	}

	activeBlack := false

	// remaining fields are optional - defaults apply when missing
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			activeBlack = true
		default:
			return nil, &ParseError{Input: fen, Msg: "invalid active color " + fields[1]}
		}

		if len(fields) > 2 {
			if fields[2] != "-" {
				for i := 0; i < len(fields[2]); i++ {
					switch fields[2][i] {
					case 'K':
						p.Castling.WhiteKingSide = true
					case 'Q':
						p.Castling.WhiteQueenSide = true
					case 'k':
						p.Castling.BlackKingSide = true
					case 'q':
						p.Castling.BlackQueenSide = true
					default:
						return nil, &ParseError{Input: fen, Msg: "invalid character in castling rights"}
					}
				}
			}
		}

		if len(fields) > 3 && fields[3] != "-" {
			ep := MakeSquare(fields[3])
			if ep == SqNone {
				return nil, &ParseError{Input: fen, Msg: "invalid en passant square " + fields[3]}
			}
			p.EnPassant = ep
		}

		if len(fields) > 4 {
			n, err := strconv.Atoi(fields[4])
			if err != nil || n < 0 {
				return nil, &ParseError{Input: fen, Msg: "invalid halfmove clock " + fields[4]}
			}
			p.HalfmoveClock = n
		}

		if len(fields) > 5 {
			n, err := strconv.Atoi(fields[5])
			if err != nil || n < 1 {
				return nil, &ParseError{Input: fen, Msg: "invalid fullmove number " + fields[5]}
			}
			p.FullmoveNumber = n
		}
	}

	p.calcChanges()

	// normalize: the side to move is always White internally
	if activeBlack {
		p.Invert()
	}

	return p, nil
}

// ToFen converts the position to FEN notation. The stored mirroring is
// undone first so the FEN always describes the true orientation. The
// output is standard FEN when no holdings are present.
func (p *Position) ToFen() string {
	out := p
	if p.TrueActiveColor == Black {
		out = p.Inverted()
	}

	var fen strings.Builder

	for r := Row8; r <= Row1; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := out.PieceAt(SquareOf(f, r))
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(pc.String())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r < Row1 {
			fen.WriteString("/")
		}
	}

	fen.WriteString(" ")
	fen.WriteString(p.TrueActiveColor.Char())
	fen.WriteString(" ")
	fen.WriteString(out.Castling.String())
	fen.WriteString(" ")
	fen.WriteString(out.EnPassant.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(out.HalfmoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(out.FullmoveNumber))

	return fen.String()
}
