package types

import (
	"testing"
	"time"
)

func TestNewPairCanonicalizes(t *testing.T) {
	tests := []struct {
		name string
		u    string
		v    string
		want Pair
	}{
		{name: "already ordered", u: "alice", v: "bob", want: Pair{A: "alice", B: "bob"}},
		{name: "reversed", u: "bob", v: "alice", want: Pair{A: "alice", B: "bob"}},
		{name: "equal ids", u: "alice", v: "alice", want: Pair{A: "alice", B: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPair(tt.u, tt.v); got != tt.want {
				t.Errorf("NewPair(%q, %q) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestCooccurrencePairIsSymmetric(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Event{Index: 1, Entity: "alice", Time: t0}
	b := Event{Index: 2, Entity: "bob", Time: t0.Add(time.Minute)}

	fwd := Cooccurrence{Event: b, OtherEvent: a, TimeDelta: time.Minute, Time: b.Time}
	rev := Cooccurrence{Event: a, OtherEvent: b, TimeDelta: time.Minute, Time: a.Time}

	if fwd.Pair() != rev.Pair() {
		t.Errorf("Pair() not symmetric: %v vs %v", fwd.Pair(), rev.Pair())
	}
}

func TestSortCooccurrencesByTimeFirst(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Event{Index: 1, Entity: "alice", Time: t0}
	b := Event{Index: 2, Entity: "bob", Time: t0.Add(time.Minute)}
	c := Event{Index: 3, Entity: "carol", Time: t0.Add(2 * time.Minute)}

	late := Cooccurrence{Event: c, OtherEvent: a, TimeDelta: 2 * time.Minute, Time: c.Time}
	early := Cooccurrence{Event: b, OtherEvent: a, TimeDelta: time.Minute, Time: b.Time}

	list := []Cooccurrence{late, early}
	SortCooccurrences(list)

	if !list[0].Time.Equal(early.Time) {
		t.Errorf("expected earliest record first, got time %v", list[0].Time)
	}
	if !list[1].Time.Equal(late.Time) {
		t.Errorf("expected latest record last, got time %v", list[1].Time)
	}
}

func TestCooccurrenceCompareTieBreakers(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Event{Index: 1, Entity: "alice", Time: t0}
	b := Event{Index: 2, Entity: "bob", Time: t0}

	x := Cooccurrence{Event: a, OtherEvent: b, TimeDelta: 0, Time: t0}
	y := Cooccurrence{Event: b, OtherEvent: a, TimeDelta: 0, Time: t0}

	// Same Time; the Event field decides.
	if got := x.Compare(y); got != -1 {
		t.Errorf("Compare() = %d, want -1", got)
	}
	if got := y.Compare(x); got != 1 {
		t.Errorf("Compare() = %d, want 1", got)
	}
	if got := x.Compare(x); got != 0 {
		t.Errorf("Compare() = %d, want 0", got)
	}
}
