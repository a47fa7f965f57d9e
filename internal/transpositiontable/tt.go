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

// Package transpositiontable implements the transposition table of the
// search: a bounded store of search results keyed by the Zobrist hash
// of a position. The table is owned by one search at a time and is not
// thread safe.
package transpositiontable

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/rescuechess/RescueGo/internal/logging"
	. "github.com/rescuechess/RescueGo/internal/types"
)

var out = message.NewPrinter(language.English)

const (
	// MaxSizeInMB maximal memory usage of the tt
	MaxSizeInMB = 4_096
)

// TtTable is the transposition table object holding data and state.
// Create with NewTtTable().
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// NewTtTable creates a new TtTable with the given number of MB as the
// maximum memory usage. The actual size is the number of entries
// fitting into that size rounded down to a power of 2 so the hash can
// be addressed with a bit mask.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize resizes the tt table. All entries will be cleared.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	if sizeInMByte <= 0 {
		tt.sizeInByte = 0
		tt.maxNumberOfEntries = 0
		tt.hashKeyMask = 0
	} else {
		tt.sizeInByte = uint64(sizeInMByte) * MB
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
		tt.hashKeyMask = tt.maxNumberOfEntries - 1
	}

	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize
	tt.numberOfEntries = 0
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)

	tt.log.Debug(out.Sprintf("TT Size %d MByte, Capacity %d entries (entry size %d Byte)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, TtEntrySize))
}

// Clear clears all entries and statistics
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Len returns the number of non-empty entries
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// Capacity returns the maximum number of entries
func (tt *TtTable) Capacity() uint64 {
	return tt.maxNumberOfEntries
}

// hash translates a key into an index into the entry array
func (tt *TtTable) hash(key Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// GetEntry returns a pointer to the entry for the key or nil when the
// slot holds a different position. Does not check depth or bounds and
// does not change statistics - used for PV extraction and the ordering
// hint.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.Key == key && e.Type != TypeNone {
		return e
	}
	return nil
}

// Probe implements the probe contract of the search:
//
//	miss when there is no entry or the stored depth is lower than the
//	requested depth;
//	Exact hits when the stored score lies inside (alpha, beta);
//	LowerBound hits when the stored score >= beta;
//	UpperBound hits when the stored score <= alpha;
//	otherwise miss.
func (tt *TtTable) Probe(key Key, depth int, alpha Value, beta Value) *TtEntry {
	tt.Stats.Probes++
	e := tt.GetEntry(key)
	if e == nil || int(e.Depth) < depth {
		tt.Stats.Misses++
		return nil
	}
	switch e.Type {
	case TypeExact:
		if e.Score > alpha && e.Score < beta {
			tt.Stats.Hits++
			return e
		}
	case TypeLowerBound:
		if e.Score >= beta {
			tt.Stats.Hits++
			return e
		}
	case TypeUpperBound:
		if e.Score <= alpha {
			tt.Stats.Hits++
			return e
		}
	}
	tt.Stats.Misses++
	return nil
}

// Put stores a search result for the position key. Replacement policy:
// empty slots are always filled; the same position is updated when the
// new entry is deeper, or equally deep and Exact; a different position
// in the slot (collision) is overwritten when the new entry is at
// least as deep or Exact.
func (tt *TtTable) Put(key Key, mv PieceMove, depth int, score Value, nodeType NodeType, alpha Value, beta Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.Puts++
	e := &tt.data[tt.hash(key)]

	newEntry := TtEntry{
		Key:   key,
		Move:  mv,
		Score: score,
		Alpha: alpha,
		Beta:  beta,
		Depth: int8(depth),
		Type:  nodeType,
	}

	switch {
	case e.Type == TypeNone:
		tt.numberOfEntries++
		*e = newEntry

	case e.Key == key:
		if depth > int(e.Depth) || (depth == int(e.Depth) && nodeType == TypeExact) {
			tt.Stats.Updates++
			*e = newEntry
		}

	default:
		tt.Stats.Collisions++
		if depth >= int(e.Depth) || nodeType == TypeExact {
			tt.Stats.Overwrites++
			*e = newEntry
		}
	}
}

// String returns a string representation of the tt state
func (tt *TtTable) String() string {
	fill := 0.0
	if tt.maxNumberOfEntries > 0 {
		fill = 100 * float64(tt.numberOfEntries) / float64(tt.maxNumberOfEntries)
	}
	return out.Sprintf("TT: size %d MB capacity %d entries %d (%.1f%%) puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, tt.numberOfEntries, fill,
		tt.Stats.Puts, tt.Stats.Updates, tt.Stats.Collisions, tt.Stats.Overwrites,
		tt.Stats.Probes, tt.Stats.Hits, tt.Stats.Misses)
}
