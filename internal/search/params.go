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

	"github.com/rescuechess/RescueGo/internal/config"
	"github.com/rescuechess/RescueGo/internal/evaluator"
	"github.com/rescuechess/RescueGo/internal/movegen"
	. "github.com/rescuechess/RescueGo/internal/types"
)

// Features toggles the search heuristics. Every feature can be
// disabled without affecting correctness, only strength and speed.
type Features struct {
	UseTT         bool
	UseLmr        bool
	UseAspiration bool
	UseKiller     bool
	UseHistory    bool

	Eval evaluator.Features
}

// DefaultFeatures returns the feature selection from the configuration
func DefaultFeatures() Features {
	return Features{
		UseTT:         config.Settings.Search.UseTT,
		UseLmr:        config.Settings.Search.UseLmr,
		UseAspiration: config.Settings.Search.UseAspiration,
		UseKiller:     config.Settings.Search.UseKiller,
		UseHistory:    config.Settings.Search.UseHistory,
		Eval:          evaluator.DefaultFeatures(),
	}
}

// SearchParams carries the limits and options of one search
type SearchParams struct {
	// Depth is the nominal search depth of the deepest iteration
	Depth int

	// QuiescenceDepth bounds the capture extension search at the leaves
	QuiescenceDepth int

	// TimeLimit is the wall clock budget of the whole search.
	// Zero means no time limit.
	TimeLimit time.Duration

	GameType movegen.GameType

	// PreviousScore seeds the first aspiration window when
	// HasPreviousScore is set
	PreviousScore    Value
	HasPreviousScore bool

	// WindowSize is the half width of the aspiration window in
	// centipawns
	WindowSize Value

	Features Features
}

// NewSearchParams creates search params with the configured defaults
func NewSearchParams() *SearchParams {
	return &SearchParams{
		Depth:           config.Settings.Search.Depth,
		QuiescenceDepth: config.Settings.Search.QuiescenceDepth,
		TimeLimit:       time.Duration(config.Settings.Search.MoveTimeMs) * time.Millisecond,
		GameType:        movegen.Classic,
		WindowSize:      Value(config.Settings.Search.WindowSize),
		Features:        DefaultFeatures(),
	}
}
