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
	"strconv"
	"strings"
)

// EpdOperandKind tags the type of an EPD operand
type EpdOperandKind uint8

// EPD operand kinds
const (
	EpdString EpdOperandKind = iota
	EpdSanMove
	EpdInteger
	EpdFloat
	EpdUnsigned
)

// EpdOperand is one operand of an EPD operation
type EpdOperand struct {
	Kind     EpdOperandKind
	Str      string
	Int      int
	Float    float64
	Unsigned uint
}

// EpdOperation is one "opcode operand...;" operation of an EPD record.
// The core recognises "bm" (best move), "id" (identifier) and "c0"
// (comment); unknown opcodes are preserved verbatim in order.
type EpdOperation struct {
	Opcode   string
	Operands []EpdOperand
}

// ExtendedPosition is a position parsed from Extended Position
// Description notation: the four mandatory FEN fields followed by
// semicolon separated operations.
type ExtendedPosition struct {
	Position   *Position
	Operations []EpdOperation
}

// Operation returns the operands of the first operation with the given
// opcode, or nil when the record has none
func (e *ExtendedPosition) Operation(opcode string) []EpdOperand {
	for i := range e.Operations {
		if e.Operations[i].Opcode == opcode {
			return e.Operations[i].Operands
		}
	}
	return nil
}

// NewPositionEpd parses an EPD string into an ExtendedPosition
func NewPositionEpd(epd string) (*ExtendedPosition, error) {
	fields := strings.Fields(epd)
	if len(fields) < 4 {
		return nil, &ParseError{Input: epd, Msg: "EPD must contain the four mandatory position fields"}
	}

	// EPD has no clocks - complete the FEN with defaults
	fen := strings.Join(fields[:4], " ") + " 0 1"
	p, err := NewPositionFen(fen)
	if err != nil {
		return nil, err
	}
	ep := &ExtendedPosition{Position: p}

	rest := strings.Join(fields[4:], " ")
	for _, opStr := range strings.Split(rest, ";") {
		opStr = strings.TrimSpace(opStr)
		if opStr == "" {
			continue
		}
		parts := strings.Fields(opStr)
		op := EpdOperation{Opcode: parts[0]}

		for i := 1; i < len(parts); i++ {
			token := parts[i]
			var operand EpdOperand
			switch {
			case strings.HasPrefix(token, "\""):
				// string operand - may span multiple tokens
				for !strings.HasSuffix(token, "\"") || len(token) < 2 {
					i++
					if i >= len(parts) {
						break
					}
					token += " " + parts[i]
				}
				operand = EpdOperand{Kind: EpdString, Str: strings.Trim(token, "\"")}
			case strings.Contains(token, "."):
				f, err := strconv.ParseFloat(token, 64)
				if err != nil {
					return nil, &ParseError{Input: epd, Msg: "invalid float operand " + token}
				}
				operand = EpdOperand{Kind: EpdFloat, Float: f}
			case strings.HasPrefix(token, "+") || strings.HasPrefix(token, "-"):
				n, err := strconv.Atoi(token)
				if err != nil {
					return nil, &ParseError{Input: epd, Msg: "invalid integer operand " + token}
				}
				operand = EpdOperand{Kind: EpdInteger, Int: n}
			case isAllDigits(token):
				n, err := strconv.ParseUint(token, 10, 32)
				if err != nil {
					return nil, &ParseError{Input: epd, Msg: "invalid unsigned operand " + token}
				}
				operand = EpdOperand{Kind: EpdUnsigned, Unsigned: uint(n)}
			default:
				operand = EpdOperand{Kind: EpdSanMove, Str: token}
			}
			op.Operands = append(op.Operands, operand)
		}

		ep.Operations = append(ep.Operations, op)
	}

	return ep, nil
}

// ToEpd converts the extended position back to EPD notation
func (e *ExtendedPosition) ToEpd() string {
	var os strings.Builder

	fen := e.Position.ToFen()
	os.WriteString(strings.Join(strings.Fields(fen)[:4], " "))

	for _, op := range e.Operations {
		os.WriteString(" ")
		os.WriteString(op.Opcode)
		for _, operand := range op.Operands {
			os.WriteString(" ")
			switch operand.Kind {
			case EpdString:
				os.WriteString("\"" + operand.Str + "\"")
			case EpdSanMove:
				os.WriteString(operand.Str)
			case EpdInteger:
				os.WriteString(strconv.Itoa(operand.Int))
			case EpdFloat:
				os.WriteString(strconv.FormatFloat(operand.Float, 'g', -1, 64))
			case EpdUnsigned:
				os.WriteString(strconv.FormatUint(uint64(operand.Unsigned), 10))
			}
		}
		os.WriteString(";")
	}

	return os.String()
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
