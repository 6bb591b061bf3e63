// Package ingest loads entity event streams from parquet files.
package ingest

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/soundprediction/cooccur/pkg/types"
)

// ParquetEvent is the on-disk schema for an event row. Attributes is a JSON
// object serialized to a string, the same convention the graph writer uses
// for free-form metadata.
type ParquetEvent struct {
	Index      int64     `parquet:"index"`
	Entity     string    `parquet:"entity"`
	Time       time.Time `parquet:"time"`
	Location   string    `parquet:"location"`
	Attributes string    `parquet:"attributes"`
}

// ReadEvents loads events from a parquet file and returns them sorted
// chronologically, ties broken by the row's index. The sort is what makes
// the result safe to feed straight into windowed detection.
func ReadEvents(path string) ([]types.Event, error) {
	rows, err := parquet.ReadFile[ParquetEvent](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	events := make([]types.Event, 0, len(rows))
	for i, row := range rows {
		event := types.Event{
			Index:    int(row.Index),
			Entity:   row.Entity,
			Time:     row.Time,
			Location: row.Location,
		}
		if row.Attributes != "" {
			if err := json.Unmarshal([]byte(row.Attributes), &event.Attributes); err != nil {
				return nil, fmt.Errorf("row %d: failed to parse attributes: %w", i, err)
			}
		}
		if err := event.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Time.Equal(events[j].Time) {
			return events[i].Time.Before(events[j].Time)
		}
		return events[i].Index < events[j].Index
	})
	return events, nil
}

// WriteEvents persists events to a parquet file in the input order.
func WriteEvents(path string, events []types.Event) error {
	rows := make([]ParquetEvent, 0, len(events))
	for i, event := range events {
		if err := event.Validate(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		row := ParquetEvent{
			Index:    int64(event.Index),
			Entity:   event.Entity,
			Time:     event.Time,
			Location: event.Location,
		}
		if len(event.Attributes) > 0 {
			attributes, err := json.Marshal(event.Attributes)
			if err != nil {
				return fmt.Errorf("event %d: failed to marshal attributes: %w", i, err)
			}
			row.Attributes = string(attributes)
		}
		rows = append(rows, row)
	}

	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write events file: %w", err)
	}
	return nil
}
