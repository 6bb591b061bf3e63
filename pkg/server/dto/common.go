package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors
var (
	ErrEmptyEvents       = errors.New("events cannot be empty")
	ErrEmptyEntity       = errors.New("entity cannot be empty")
	ErrZeroTime          = errors.New("time cannot be zero")
	ErrEmptyMaxGap       = errors.New("max_gap cannot be empty")
	ErrEmptyMinSpan      = errors.New("min_span cannot be empty")
	ErrNegativeDuration  = errors.New("duration cannot be negative")
	ErrEntityTooLong     = errors.New("entity exceeds maximum length (1024)")
	ErrLocationTooLong   = errors.New("location exceeds maximum length (1024)")
	ErrTooManyEvents     = errors.New("events count exceeds maximum (100000)")
	ErrTooManyAttributes = errors.New("attributes count exceeds maximum (100)")
)

// Field limits to prevent abuse
const (
	MaxEntityLength   = 1024
	MaxLocationLength = 1024
	MaxEventsCount    = 100000
	MaxAttributeCount = 100
)

// EventPayload represents one entity event on the wire
type EventPayload struct {
	Index      int                    `json:"index"`
	Entity     string                 `json:"entity" binding:"required"`
	Time       time.Time              `json:"time" binding:"required"`
	Location   string                 `json:"location,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Validate performs validation on EventPayload
func (e *EventPayload) Validate() error {
	if strings.TrimSpace(e.Entity) == "" {
		return ErrEmptyEntity
	}
	if len(e.Entity) > MaxEntityLength {
		return ErrEntityTooLong
	}
	if e.Time.IsZero() {
		return ErrZeroTime
	}
	if len(e.Location) > MaxLocationLength {
		return ErrLocationTooLong
	}
	if len(e.Attributes) > MaxAttributeCount {
		return ErrTooManyAttributes
	}
	return nil
}

// parseDuration parses a non-negative Go duration string like "5m" or "2h"
func parseDuration(field, value string) (time.Duration, error) {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	if parsed < 0 {
		return 0, fmt.Errorf("%s: %w", field, ErrNegativeDuration)
	}
	return parsed, nil
}

// validateEvents checks an event list shared by the detect and build requests
func validateEvents(events []EventPayload) error {
	if len(events) == 0 {
		return ErrEmptyEvents
	}
	if len(events) > MaxEventsCount {
		return ErrTooManyEvents
	}
	for i := range events {
		if err := events[i].Validate(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
