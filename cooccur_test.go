package cooccur

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/cooccur/pkg/graph"
	"github.com/soundprediction/cooccur/pkg/types"
)

var t0 = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func newPipeline(t *testing.T, maxGap, minSpan time.Duration) *Pipeline {
	t.Helper()
	pipeline, err := New(&Config{MaxGap: maxGap, MinSpan: minSpan}, nil)
	require.NoError(t, err)
	return pipeline
}

func TestNewRejectsBadThresholds(t *testing.T) {
	_, err := New(&Config{MaxGap: -time.Second}, nil)
	assert.ErrorIs(t, err, types.ErrNegativeMaxGap)

	_, err = New(&Config{MinSpan: -time.Second}, nil)
	assert.ErrorIs(t, err, types.ErrNegativeMinSpan)
}

func TestRunEmptyStream(t *testing.T) {
	pipeline := newPipeline(t, 5*time.Minute, 2*time.Hour)

	result, err := pipeline.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, result.Cooccurrences)
	assert.Nil(t, result.SystematicGraph)
	assert.Nil(t, result.RandomGraph)
}

func TestRunEndToEnd(t *testing.T) {
	// alice and bob meet at the station every morning across three days;
	// carol passes bob once at the harbor.
	var events []types.Event
	index := 0
	for day := 0; day < 3; day++ {
		at := t0.Add(time.Duration(day) * 24 * time.Hour)
		events = append(events,
			types.Event{Index: index, Entity: "alice", Time: at, Location: "station"},
			types.Event{Index: index + 1, Entity: "bob", Time: at.Add(time.Minute), Location: "station"},
		)
		index += 2
	}
	events = append(events,
		types.Event{Index: index, Entity: "bob", Time: t0.Add(time.Hour), Location: "harbor"},
		types.Event{Index: index + 1, Entity: "carol", Time: t0.Add(time.Hour + 2*time.Minute), Location: "harbor"},
	)

	pipeline := newPipeline(t, 5*time.Minute, 2*time.Hour)
	result, err := pipeline.Run(context.Background(), events)
	require.NoError(t, err)

	require.Len(t, result.Cooccurrences, 4)
	assert.Len(t, result.Systematic, 3)
	assert.Len(t, result.Random, 1)

	require.NotNil(t, result.SystematicGraph)
	assert.Equal(t, 2, result.SystematicGraph.NodeCount())
	assert.Equal(t, 3, result.SystematicGraph.Weight("alice", "bob"))

	require.NotNil(t, result.RandomGraph)
	assert.Equal(t, 1, result.RandomGraph.Weight("bob", "carol"))
	assert.Equal(t, 0, result.RandomGraph.Weight("alice", "bob"))
}

func TestRunConcurrentConfigMatchesSequential(t *testing.T) {
	var events []types.Event
	locations := []string{"station", "harbor", "plaza"}
	entities := []string{"alice", "bob", "carol", "dave"}
	for i := 0; i < 120; i++ {
		events = append(events, types.Event{
			Index:    i,
			Entity:   entities[i%len(entities)],
			Time:     t0.Add(time.Duration(i) * 41 * time.Second),
			Location: locations[i%len(locations)],
		})
	}

	sequential := newPipeline(t, 4*time.Minute, time.Hour)
	concurrent, err := New(&Config{MaxGap: 4 * time.Minute, MinSpan: time.Hour, MaxConcurrency: 3}, nil)
	require.NoError(t, err)

	want, err := sequential.Run(context.Background(), events)
	require.NoError(t, err)
	got, err := concurrent.Run(context.Background(), events)
	require.NoError(t, err)

	assert.Equal(t, want.Cooccurrences, got.Cooccurrences)
	assert.Equal(t, want.Systematic, got.Systematic)
	assert.Equal(t, want.Random, got.Random)
}

func TestRunPropagatesInvalidEvent(t *testing.T) {
	pipeline := newPipeline(t, 5*time.Minute, 2*time.Hour)

	_, err := pipeline.Run(context.Background(), []types.Event{{Index: 0, Time: t0}})
	assert.ErrorIs(t, err, types.ErrEmptyEntity)
}

func TestBuildGraphEmptyList(t *testing.T) {
	pipeline := newPipeline(t, 5*time.Minute, 2*time.Hour)

	_, err := pipeline.BuildGraph(nil)
	assert.ErrorIs(t, err, graph.ErrNoCooccurrences)
}
