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

package config

// evalConfiguration is a data structure to hold the configuration of
// the evaluator. Every feature is a pure function of the position and
// can be toggled independently. Toggling never affects legality, only
// which move the search prefers.
type evalConfiguration struct {
	UseBishopPair        bool
	UsePawnStructure     bool
	UseKingSafety        bool
	UseMobility          bool
	UsePieceCoordination bool
	UsePawnControl       bool
	UsePieceProtection   bool

	BishopPairBonus    int
	DoubledPawnPenalty int
	IsolaniPenalty     int
	KingShieldBonus    int
	MobilityBonus      int
	CoordinationBonus  int
	PawnControlBonus   int
	ProtectionBonus    int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Eval.UseBishopPair = true
	Settings.Eval.UsePawnStructure = true
	Settings.Eval.UseKingSafety = true
	Settings.Eval.UseMobility = false // slow, over doubles search time
	Settings.Eval.UsePieceCoordination = true
	Settings.Eval.UsePawnControl = true
	Settings.Eval.UsePieceProtection = true

	Settings.Eval.BishopPairBonus = 50
	Settings.Eval.DoubledPawnPenalty = 20
	Settings.Eval.IsolaniPenalty = 15
	Settings.Eval.KingShieldBonus = 10
	Settings.Eval.MobilityBonus = 2
	Settings.Eval.CoordinationBonus = 5
	Settings.Eval.PawnControlBonus = 10
	Settings.Eval.ProtectionBonus = 8
}
