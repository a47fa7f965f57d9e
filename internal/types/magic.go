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

// Magic holds all magic bitboard data relevant for a single square:
// the occupancy mask, the magic constant, the shift and the attack
// table slice the hashed index points into.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index calculates the index into the attack table:
//
//	occ &= mask; occ *= magic; occ >>= shift
//
// The multiply is an unsigned 64-bit wrapping multiply. The magic was
// searched so that the mapping is collision-free for every subset of
// the mask (identical attack sets may share a slot).
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ = occ * m.Magic
	occ = occ >> m.Shift
	return uint(occ)
}

// separate magic tables per sliding piece type - a queen is synthesised
// as bishop|rook at lookup time, trading one multiply for two
var (
	bishopMagics [SqLength]Magic
	rookMagics   [SqLength]Magic

	// combined attack tables ("fancy" magics - individual table sizes
	// per square, sliced out of one backing array)
	bishopTable = make([]Bitboard, 5_248)
	rookTable   = make([]Bitboard, 102_400)
)

// AttacksBb returns a bitboard representing all the squares attacked by
// a piece of the given type pt (not pawn) placed on sq with the given
// board occupation. For sliding pieces this uses the pre-computed magic
// bitboard attack tables, for knight and king the pre-computed step
// tables. The occupation is ignored for non sliders.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.Attacks[mb.index(occupied)] | mr.Attacks[mr.index(occupied)]
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	}
	return BbZero
}

// RayAttacks computes sliding attacks by walking each ray square by
// square until the first blocker (inclusive). Much slower than the
// magic lookup but trivially correct - this is the reference the
// magics are verified against.
func RayAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return slidingAttack(&bishopDirections, sq, occupied)
	case Rook:
		return slidingAttack(&rookDirections, sq, occupied)
	case Queen:
		return slidingAttack(&bishopDirections, sq, occupied) |
			slidingAttack(&rookDirections, sq, occupied)
	}
	return BbZero
}

// OccupancyMask returns the relevant occupancy mask of the sliding
// piece type on the square - the blocker squares without the board
// edges (edges can never change which squares are reached first).
func OccupancyMask(pt PieceType, sq Square) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Mask
	case Rook:
		return rookMagics[sq].Mask
	}
	return BbZero
}

// initMagics computes the magic bitboards for one sliding piece type at
// startup using the so called "fancy" approach: random sparse magics
// are probed until one maps every subset of the occupancy mask onto a
// collision-free index.
func initMagics(table *[]Bitboard, magics *[SqLength]Magic, directions *[4]Direction) {

	// PrnG seeds per row to pick working magics quickly
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	occupancy := [4096]Bitboard{}
	reference := [4096]Bitboard{}
	epoch := [4096]int{}
	cnt := 0
	size := 0

	for sq := SqA8; sq <= SqH1; sq++ {
		// board edges are not part of the relevant occupancies
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.rowBb()) | ((FileA_Bb | FileH_Bb) &^ sq.fileBb())

		// The mask is the sliding attack from sq on an empty board
		// without the edges. The table for the square must hold one
		// entry per subset of the mask, so the shift is 64 minus the
		// number of mask bits.
		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		// individual table sizes per square - slice the next window
		// out of the backing array
		if sq == SqA8 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Carry-Rippler trick to enumerate all subsets of the mask and
		// pre compute the true attack set for each of them.
		b := BbZero
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == BbZero {
				break
			}
		}

		rng := NewPrnG(seeds[sq.RowOf()])

		// Probe sparse random numbers until one maps every occupancy
		// subset onto an index that looks up the correct attack set.
		// The table is filled as a side effect of the verification;
		// epoch[] avoids clearing it after a failed attempt.
		for i := 0; i < size; {
			for m.Magic = 0; ((m.Magic * m.Mask) >> 56).PopCount() < 6; {
				m.Magic = Bitboard(rng.SparseRand())
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack calculates sliding attacks along the given directions
// for the given square and board occupation. Walks square by square -
// fine for pre-computing and as a test oracle, too slow for move
// generation or search.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// PrnG is the xorshift64star pseudo random number generator used for
// the magic number search. Based on code written and dedicated to the
// public domain by Sebastiano Vigna (2014).
type PrnG struct {
	s uint64
}

// NewPrnG creates a new instance of the pseudo random generator
func NewPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

// Rand64 returns the next pseudo random 64-bit number
func (r *PrnG) Rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// SparseRand returns a random number with only ~1/8th of its bits set
// on average. Magic candidates need to be sparse.
func (r *PrnG) SparseRand() uint64 {
	return r.Rand64() & r.Rand64() & r.Rand64()
}
