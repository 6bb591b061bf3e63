// Package detect implements windowed co-occurrence detection over
// location-grouped event streams.
package detect

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/soundprediction/cooccur/pkg/types"
	"github.com/soundprediction/cooccur/pkg/utils"
)

// Detector performs a sliding-time-window pairwise join over the
// chronologically ordered event sequence of each location group.
//
// Events must arrive in chronological order within each location group; the
// detector processes each group in input order and does not re-sort.
type Detector struct {
	maxGap time.Duration
	logger *slog.Logger
}

// New creates a Detector. maxGap must not be negative; a zero maxGap is
// well-defined and yields no co-occurrences because the gap comparison is
// strict.
func New(maxGap time.Duration, logger *slog.Logger) (*Detector, error) {
	if maxGap < 0 {
		return nil, types.ErrNegativeMaxGap
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{maxGap: maxGap, logger: logger}, nil
}

// MaxGap returns the configured window width.
func (d *Detector) MaxGap() time.Duration {
	return d.maxGap
}

// Detect emits one co-occurrence for every pair of events from different
// entities that fall within maxGap of each other in the same location
// group. Output order is: location groups in the order first encountered in
// the input, and within a group, emission order during the scan.
func (d *Detector) Detect(ctx context.Context, events []types.Event) ([]types.Cooccurrence, error) {
	groups, order, err := groupByLocation(events)
	if err != nil {
		return nil, err
	}

	var cooccurrences []types.Cooccurrence
	for _, location := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found := d.scanGroup(groups[location])
		d.logger.Debug("scanned location group",
			"location", displayLocation(location),
			"events", len(groups[location]),
			"cooccurrences", len(found))
		cooccurrences = append(cooccurrences, found...)
	}
	return cooccurrences, nil
}

// DetectConcurrent runs the per-location scans on a bounded executor.
// Location groups are independent, so no coordination is needed beyond
// concatenating their outputs in the same deterministic order Detect uses.
// A non-positive maxConcurrency falls back to GOMAXPROCS.
func (d *Detector) DetectConcurrent(ctx context.Context, events []types.Event, maxConcurrency int) ([]types.Cooccurrence, error) {
	groups, order, err := groupByLocation(events)
	if err != nil {
		return nil, err
	}

	results := make([][]types.Cooccurrence, len(order))
	functions := make([]func() error, len(order))
	for i, location := range order {
		group := groups[location]
		index := i
		functions[index] = func() error {
			results[index] = d.scanGroup(group)
			return nil
		}
	}

	executor := utils.NewConcurrentExecutor(maxConcurrency)
	if err := utils.FirstError(executor.Execute(ctx, functions...)); err != nil {
		return nil, err
	}

	var cooccurrences []types.Cooccurrence
	for _, found := range results {
		cooccurrences = append(cooccurrences, found...)
	}
	return cooccurrences, nil
}

// scanGroup runs the sliding-window join over one location group. The inner
// loop iterates a snapshot of the window taken before the incoming event is
// appended; evictions pop the front of the live window, which holds the
// oldest remaining event.
func (d *Detector) scanGroup(group []types.Event) []types.Cooccurrence {
	var cooccurrences []types.Cooccurrence
	var w window

	for _, event := range group {
		for _, other := range w.snapshot() {
			if event.Entity == other.Entity {
				// Same entity is never paired with itself, but its events
				// stay in the window for later arrivals.
				continue
			}
			gap := event.Time.Sub(other.Time)
			if gap < d.maxGap {
				cooccurrences = append(cooccurrences, types.Cooccurrence{
					Event:      event,
					OtherEvent: other,
					TimeDelta:  gap,
					Time:       event.Time,
				})
			} else {
				w.popFront()
			}
		}
		w.pushBack(event)
	}
	return cooccurrences
}

// groupByLocation partitions events by location, preserving input order
// within each group and recording the order locations were first seen.
// Events without a location share one unknown-location bucket. Malformed
// events fail the whole call.
func groupByLocation(events []types.Event) (map[string][]types.Event, []string, error) {
	groups := make(map[string][]types.Event)
	var order []string
	for i := range events {
		if err := events[i].Validate(); err != nil {
			return nil, nil, fmt.Errorf("event %d: %w", i, err)
		}
		location := events[i].Location
		if _, seen := groups[location]; !seen {
			order = append(order, location)
		}
		groups[location] = append(groups[location], events[i])
	}
	return groups, order, nil
}

func displayLocation(location string) string {
	if location == "" {
		return "(unknown)"
	}
	return location
}
