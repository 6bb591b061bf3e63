package types

import (
	"sort"
	"time"
)

// Cooccurrence pairs two events from different entities that were observed
// at the same location within a bounded time gap.
//
// Event is the later of the two in scan order; OtherEvent was already in the
// detection window when Event arrived. TimeDelta equals
// Event.Time - OtherEvent.Time and is always in [0, maxGap). Time equals
// Event.Time and serves as the record's own sortable timestamp.
//
// Cooccurrences are created only by the detector and never mutated
// afterward, only partitioned or folded.
type Cooccurrence struct {
	Event      Event         `json:"event"`
	OtherEvent Event         `json:"other_event"`
	TimeDelta  time.Duration `json:"time_delta"`
	Time       time.Time     `json:"time"`
}

// Pair returns the canonical entity pair behind the co-occurrence.
func (c Cooccurrence) Pair() Pair {
	return NewPair(c.Event.Entity, c.OtherEvent.Entity)
}

// Compare orders co-occurrences by Time first, then structurally by Event,
// OtherEvent and TimeDelta. The resulting total order makes the first and
// last elements of a sorted group its chronological extremes.
func (c Cooccurrence) Compare(other Cooccurrence) int {
	if v := c.Time.Compare(other.Time); v != 0 {
		return v
	}
	if v := c.Event.Compare(other.Event); v != 0 {
		return v
	}
	if v := c.OtherEvent.Compare(other.OtherEvent); v != 0 {
		return v
	}
	switch {
	case c.TimeDelta < other.TimeDelta:
		return -1
	case c.TimeDelta > other.TimeDelta:
		return 1
	}
	return 0
}

// SortCooccurrences sorts a list of co-occurrences in place by their total
// ordering.
func SortCooccurrences(cooccurrences []Cooccurrence) {
	sort.Slice(cooccurrences, func(i, j int) bool {
		return cooccurrences[i].Compare(cooccurrences[j]) < 0
	})
}

// Pair is an unordered pair of entity identifiers, canonicalized so that
// (u, v) and (v, u) compare equal. It is usable as a map key.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NewPair canonicalizes two entity identifiers into a Pair by sorting them
// lexicographically.
func NewPair(u, v string) Pair {
	if v < u {
		u, v = v, u
	}
	return Pair{A: u, B: v}
}
