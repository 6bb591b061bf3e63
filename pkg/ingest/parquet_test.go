package ingest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/cooccur/pkg/types"
)

var t0 = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func TestReadEventsSortsChronologically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.parquet")

	input := []types.Event{
		{Index: 2, Entity: "carol", Time: t0.Add(2 * time.Minute), Location: "station"},
		{Index: 0, Entity: "alice", Time: t0, Location: "station"},
		{Index: 1, Entity: "bob", Time: t0.Add(time.Minute), Location: "harbor"},
	}
	require.NoError(t, WriteEvents(path, input))

	events, err := ReadEvents(path)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, "alice", events[0].Entity)
	assert.Equal(t, "bob", events[1].Entity)
	assert.Equal(t, "carol", events[2].Entity)
	assert.True(t, events[0].Time.Equal(t0))
}

func TestReadEventsBreaksTiesByIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.parquet")

	input := []types.Event{
		{Index: 5, Entity: "bob", Time: t0},
		{Index: 1, Entity: "alice", Time: t0},
	}
	require.NoError(t, WriteEvents(path, input))

	events, err := ReadEvents(path)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "alice", events[0].Entity)
	assert.Equal(t, "bob", events[1].Entity)
}

func TestRoundTripPreservesAttributes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.parquet")

	input := []types.Event{
		{
			Index:    0,
			Entity:   "alice",
			Time:     t0,
			Location: "station",
			Attributes: map[string]any{
				"vessel": "mmsi-123",
				"speed":  12.5,
			},
		},
		{Index: 1, Entity: "bob", Time: t0.Add(time.Minute)},
	}
	require.NoError(t, WriteEvents(path, input))

	events, err := ReadEvents(path)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "mmsi-123", events[0].Attributes["vessel"])
	assert.Equal(t, 12.5, events[0].Attributes["speed"])
	assert.Nil(t, events[1].Attributes)
}

func TestWriteEventsRejectsInvalidEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.parquet")

	err := WriteEvents(path, []types.Event{{Index: 0, Time: t0}})
	assert.ErrorIs(t, err, types.ErrEmptyEntity)
}

func TestReadEventsMissingFile(t *testing.T) {
	_, err := ReadEvents(filepath.Join(t.TempDir(), "absent.parquet"))
	assert.Error(t, err)
}
