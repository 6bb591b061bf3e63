package types

import (
	"testing"
	"time"
)

func TestEventValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		event   Event
		wantErr error
	}{
		{
			name: "valid event",
			event: Event{
				Index:  1,
				Entity: "alice",
				Time:   now,
			},
			wantErr: nil,
		},
		{
			name: "valid event without location",
			event: Event{
				Index:  2,
				Entity: "bob",
				Time:   now,
			},
			wantErr: nil,
		},
		{
			name: "empty entity",
			event: Event{
				Index:    3,
				Entity:   "",
				Time:     now,
				Location: "station",
			},
			wantErr: ErrEmptyEntity,
		},
		{
			name: "zero time",
			event: Event{
				Index:  4,
				Entity: "carol",
			},
			wantErr: ErrZeroTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if err != tt.wantErr {
				t.Errorf("Event.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEventCompare(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    Event
		b    Event
		want int
	}{
		{
			name: "equal events",
			a:    Event{Index: 1, Entity: "alice", Time: t0, Location: "hub"},
			b:    Event{Index: 1, Entity: "alice", Time: t0, Location: "hub"},
			want: 0,
		},
		{
			name: "index decides first",
			a:    Event{Index: 1, Entity: "zed", Time: t0.Add(time.Hour)},
			b:    Event{Index: 2, Entity: "alice", Time: t0},
			want: -1,
		},
		{
			name: "entity breaks index tie",
			a:    Event{Index: 1, Entity: "alice", Time: t0},
			b:    Event{Index: 1, Entity: "bob", Time: t0},
			want: -1,
		},
		{
			name: "time breaks entity tie",
			a:    Event{Index: 1, Entity: "alice", Time: t0.Add(time.Minute)},
			b:    Event{Index: 1, Entity: "alice", Time: t0},
			want: 1,
		},
		{
			name: "location is the last tie-breaker",
			a:    Event{Index: 1, Entity: "alice", Time: t0, Location: "a"},
			b:    Event{Index: 1, Entity: "alice", Time: t0, Location: "b"},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}
