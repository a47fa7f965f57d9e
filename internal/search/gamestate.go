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
	"time"

	"github.com/rescuechess/RescueGo/internal/movegen"
	"github.com/rescuechess/RescueGo/internal/position"
	. "github.com/rescuechess/RescueGo/internal/types"
)

// GameState tracks a running game: the current position, how often
// every position has been on the board (draw detection), the ply
// count, whose turn it is and the per-side previous scores which seed
// the aspiration windows.
type GameState struct {
	// repetition count per position hash
	Positions map[Key]int

	// the current position - mirrored when CurrentTurn is Black
	CurrentPosition *position.Position

	// number of single moves made
	NumPlies int

	// number of the full move
	MoveNumber int

	// whose turn it is
	CurrentTurn Color

	// previous search scores for white and black
	prevScores    [ColorLength]Value
	hasPrevScores [ColorLength]bool

	// the depth the next search will run to - incremented when the
	// current position repeats, to search past repetition loops
	SearchDepth int

	GameType  movegen.GameType
	TimeLimit time.Duration

	search *Search
}

// NewGameState creates a game state at the start position
func NewGameState(gt movegen.GameType) *GameState {
	return NewGameStateFromPosition(position.NewPosition(), gt)
}

// NewGameStateFromPosition creates a game state at the given position
func NewGameStateFromPosition(p *position.Position, gt movegen.GameType) *GameState {
	gs := &GameState{
		Positions:       make(map[Key]int),
		CurrentPosition: p,
		NumPlies:        0,
		MoveNumber:      p.FullmoveNumber,
		CurrentTurn:     p.TrueActiveColor,
		SearchDepth:     4,
		GameType:        gt,
		TimeLimit:       5 * time.Second,
		search:          NewSearch(),
	}
	gs.Positions[p.Hash()]++
	return gs
}

// Search returns the search instance of the game
func (gs *GameState) Search() *Search {
	return gs.search
}

// ApplyMove plays the move on the current position and mirrors the
// board so the next side to move is "white" again
func (gs *GameState) ApplyMove(mv PieceMove) error {
	if err := gs.CurrentPosition.Apply(&mv); err != nil {
		return err
	}
	if gs.CurrentTurn == Black {
		gs.CurrentPosition.FullmoveNumber++
	}
	gs.CurrentPosition.Invert()

	gs.Positions[gs.CurrentPosition.Hash()]++
	gs.NumPlies++
	gs.CurrentTurn = gs.CurrentTurn.Flip()
	if gs.CurrentTurn == White {
		gs.MoveNumber++
	}
	return nil
}

// TimesCurrentPositionSeen returns how often the current position has
// been on the board
func (gs *GameState) TimesCurrentPositionSeen() int {
	return gs.Positions[gs.CurrentPosition.Hash()]
}

// IsRepetitionDraw reports whether the current position has occurred
// three times
func (gs *GameState) IsRepetitionDraw() bool {
	return gs.TimesCurrentPositionSeen() >= 3
}

// PreviousScore returns the previous search score of the color
func (gs *GameState) PreviousScore(c Color) (Value, bool) {
	return gs.prevScores[c], gs.hasPrevScores[c]
}

// SearchAndApply searches the current position and plays the best
// move. The previous score of the side to move seeds the aspiration
// window. When the position after the move has been seen before, the
// search depth is bumped to look past the repetition.
func (gs *GameState) SearchAndApply() (PieceMove, *Result, error) {
	params := NewSearchParams()
	params.Depth = gs.SearchDepth
	params.GameType = gs.GameType
	params.TimeLimit = gs.TimeLimit
	if score, ok := gs.PreviousScore(gs.CurrentTurn); ok {
		params.PreviousScore = score
		params.HasPreviousScore = true
	}

	mover := gs.CurrentTurn
	result, err := gs.search.Search(gs.CurrentPosition, *params)
	if err != nil && err != ErrTimeout {
		return PieceMove{}, result, err
	}
	if result == nil || !result.HasBestMove {
		return PieceMove{}, result, ErrNoLegalMoves
	}

	gs.prevScores[mover] = result.Score
	gs.hasPrevScores[mover] = true

	if err := gs.ApplyMove(result.BestMove); err != nil {
		return PieceMove{}, result, err
	}

	if gs.TimesCurrentPositionSeen() > 1 {
		gs.SearchDepth++
	}

	return result.BestMove, result, nil
}
