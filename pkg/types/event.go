package types

import (
	"errors"
	"strings"
	"time"
)

// Validation errors
var (
	ErrEmptyEntity     = errors.New("entity cannot be empty")
	ErrZeroTime        = errors.New("time must be set")
	ErrNegativeMaxGap  = errors.New("max gap must not be negative")
	ErrNegativeMinSpan = errors.New("min span must not be negative")
)

// Event represents a single observation of an entity at a point in time.
//
// Location is optional; all events with an empty Location are grouped
// together under one unknown-location bucket during detection. Attributes
// carry caller-defined metadata and are never interpreted by the pipeline.
// Events are immutable value objects with no identity beyond their fields.
type Event struct {
	Index      int            `json:"index" mapstructure:"index"`
	Entity     string         `json:"entity" mapstructure:"entity"`
	Time       time.Time      `json:"time" mapstructure:"time"`
	Location   string         `json:"location,omitempty" mapstructure:"location"`
	Attributes map[string]any `json:"attributes,omitempty" mapstructure:"attributes"`
}

// Validate checks that the required fields are set.
func (e *Event) Validate() error {
	if e.Entity == "" {
		return ErrEmptyEntity
	}
	if e.Time.IsZero() {
		return ErrZeroTime
	}
	return nil
}

// Compare orders events structurally, field by field: Index, Entity, Time,
// Location. It returns -1 when e sorts before other, +1 when after, 0 when
// all fields are equal.
func (e Event) Compare(other Event) int {
	if e.Index != other.Index {
		if e.Index < other.Index {
			return -1
		}
		return 1
	}
	if c := strings.Compare(e.Entity, other.Entity); c != 0 {
		return c
	}
	if c := e.Time.Compare(other.Time); c != 0 {
		return c
	}
	return strings.Compare(e.Location, other.Location)
}
