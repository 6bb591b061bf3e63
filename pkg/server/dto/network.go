package dto

import (
	"time"
)

// DetectRequest asks for the co-occurrences in an event stream. MaxGap is a
// Go duration string like "5m".
type DetectRequest struct {
	MaxGap string         `json:"max_gap" binding:"required"`
	Events []EventPayload `json:"events" binding:"required"`
}

// Validate performs validation on DetectRequest
func (r *DetectRequest) Validate() error {
	if r.MaxGap == "" {
		return ErrEmptyMaxGap
	}
	if _, err := parseDuration("max_gap", r.MaxGap); err != nil {
		return err
	}
	return validateEvents(r.Events)
}

// MaxGapDuration returns the parsed window width. Call Validate first.
func (r *DetectRequest) MaxGapDuration() (time.Duration, error) {
	return parseDuration("max_gap", r.MaxGap)
}

// BuildRequest asks for a full pipeline run: detection, classification, and
// both contact graphs.
type BuildRequest struct {
	MaxGap  string         `json:"max_gap" binding:"required"`
	MinSpan string         `json:"min_span" binding:"required"`
	Events  []EventPayload `json:"events" binding:"required"`
}

// Validate performs validation on BuildRequest
func (r *BuildRequest) Validate() error {
	if r.MaxGap == "" {
		return ErrEmptyMaxGap
	}
	if _, err := parseDuration("max_gap", r.MaxGap); err != nil {
		return err
	}
	if r.MinSpan == "" {
		return ErrEmptyMinSpan
	}
	if _, err := parseDuration("min_span", r.MinSpan); err != nil {
		return err
	}
	return validateEvents(r.Events)
}

// Thresholds returns the parsed window width and classification threshold.
// Call Validate first.
func (r *BuildRequest) Thresholds() (maxGap, minSpan time.Duration, err error) {
	if maxGap, err = parseDuration("max_gap", r.MaxGap); err != nil {
		return 0, 0, err
	}
	if minSpan, err = parseDuration("min_span", r.MinSpan); err != nil {
		return 0, 0, err
	}
	return maxGap, minSpan, nil
}

// GraphRequest asks for a contact graph built straight from an event stream
// without classification.
type GraphRequest struct {
	MaxGap string         `json:"max_gap" binding:"required"`
	Events []EventPayload `json:"events" binding:"required"`
}

// Validate performs validation on GraphRequest
func (r *GraphRequest) Validate() error {
	if r.MaxGap == "" {
		return ErrEmptyMaxGap
	}
	if _, err := parseDuration("max_gap", r.MaxGap); err != nil {
		return err
	}
	return validateEvents(r.Events)
}

// MaxGapDuration returns the parsed window width. Call Validate first.
func (r *GraphRequest) MaxGapDuration() (time.Duration, error) {
	return parseDuration("max_gap", r.MaxGap)
}

// CooccurrenceResult represents one detected co-occurrence on the wire.
// TimeDelta is a Go duration string.
type CooccurrenceResult struct {
	Event      EventPayload `json:"event"`
	OtherEvent EventPayload `json:"other_event"`
	TimeDelta  string       `json:"time_delta"`
	Time       time.Time    `json:"time"`
}

// DetectResponse is the payload returned by the detect endpoint
type DetectResponse struct {
	Count         int                  `json:"count"`
	Cooccurrences []CooccurrenceResult `json:"cooccurrences"`
}

// NodeResult represents a graph node on the wire
type NodeResult struct {
	Entity string    `json:"entity"`
	Time   time.Time `json:"time"`
}

// EdgeResult represents a weighted graph edge on the wire
type EdgeResult struct {
	Source   string    `json:"source"`
	Target   string    `json:"target"`
	Weight   int       `json:"weight"`
	LastSeen time.Time `json:"last_seen"`
}

// GraphResult represents a contact graph on the wire
type GraphResult struct {
	Nodes     []NodeResult `json:"nodes"`
	Edges     []EdgeResult `json:"edges"`
	FinalDate time.Time    `json:"final_date"`
}

// BuildResponse is the payload returned by the build endpoint. A graph is
// omitted when its classified subset is empty.
type BuildResponse struct {
	Cooccurrences int          `json:"cooccurrences"`
	Systematic    *GraphResult `json:"systematic,omitempty"`
	Random        *GraphResult `json:"random,omitempty"`
}
