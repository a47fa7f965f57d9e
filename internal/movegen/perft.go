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

package movegen

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/rescuechess/RescueGo/internal/logging"
	"github.com/rescuechess/RescueGo/internal/position"
	. "github.com/rescuechess/RescueGo/internal/types"
	"github.com/rescuechess/RescueGo/internal/util"
)

var out = message.NewPrinter(language.English)

// Perft walks the move generation tree of strictly legal moves to the
// given depth and counts the leaf nodes and special moves on the way.
// In Classic mode the node counts reproduce the well known perft results
// of standard chess wherever castling through an attacked square does
// not occur; the generator does not test the squares the king passes.
type Perft struct {
	log *logging.Logger

	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Rescues    uint64
	Drops      uint64
	Checkmates uint64
}

// NewPerft creates a new Perft instance
func NewPerft() *Perft {
	return &Perft{log: myLogging.GetLog()}
}

// StartPerft runs perft on the given position to the given depth and
// returns the number of leaf nodes
func (pf *Perft) StartPerft(fen string, depth int, gt GameType, verbose bool) uint64 {
	pf.reset()
	p, err := position.NewPositionFen(fen)
	if err != nil {
		pf.log.Error("perft: invalid fen: ", err)
		return 0
	}

	start := time.Now()
	pf.perft(p, depth, gt)
	elapsed := time.Since(start)

	if verbose {
		pf.log.Info(out.Sprintf("Perft depth %d: %d nodes in %d ms (%d nps)",
			depth, pf.Nodes, elapsed.Milliseconds(), util.Nps(pf.Nodes, elapsed)))
		pf.log.Info(out.Sprintf("  captures %d  ep %d  castles %d  promotions %d  rescues %d  drops %d  checkmates %d",
			pf.Captures, pf.EnPassants, pf.Castles, pf.Promotions, pf.Rescues, pf.Drops, pf.Checkmates))
	}
	return pf.Nodes
}

func (pf *Perft) reset() {
	pf.Nodes = 0
	pf.Captures = 0
	pf.EnPassants = 0
	pf.Castles = 0
	pf.Promotions = 0
	pf.Rescues = 0
	pf.Drops = 0
	pf.Checkmates = 0
}

func (pf *Perft) perft(p *position.Position, depth int, gt GameType) {
	if depth == 0 {
		pf.Nodes++
		return
	}

	moves, err := LegalMoves(p, gt)
	if err != nil {
		pf.log.Error("perft: ", err)
		return
	}

	if len(moves) == 0 && depth > 0 && p.IsCheck() {
		pf.Checkmates++
	}

	for i := range moves {
		mv := moves[i]
		if depth == 1 {
			pf.Nodes++
			if mv.IsCapture() {
				pf.Captures++
			}
			switch mv.Kind {
			case MkEnPassant:
				pf.EnPassants++
			case MkCastle:
				pf.Castles++
			}
			if mv.IsPromotion() {
				pf.Promotions++
			}
			if mv.HasRescue() {
				pf.Rescues++
			}
			if mv.HasDrop() {
				pf.Drops++
			}
			continue
		}
		child := p.Clone()
		if err := child.Apply(&mv); err != nil {
			pf.log.Error("perft: ", err)
			continue
		}
		child.Invert()
		pf.perft(child, depth-1, gt)
	}
}
