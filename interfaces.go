package cooccur

import (
	"context"

	"github.com/soundprediction/cooccur/pkg/graph"
	"github.com/soundprediction/cooccur/pkg/types"
)

// This file defines focused interfaces so consumers can depend on the
// smallest surface that meets their needs. The Network interface composes
// them for callers who want the whole pipeline.

// Detector finds co-occurrences in a chronologically ordered event stream.
type Detector interface {
	// Detect emits one co-occurrence per cross-entity event pair that falls
	// within the configured window in the same location group.
	Detect(ctx context.Context, events []types.Event) ([]types.Cooccurrence, error)
}

// Classifier partitions co-occurrences into systematic and random contact.
type Classifier interface {
	// Classify returns the systematic subset and the random subset. A pair's
	// records always land together in one of the two.
	Classify(ctx context.Context, cooccurrences []types.Cooccurrence) (systematic, random []types.Cooccurrence, err error)
}

// GraphBuilder folds co-occurrence lists into weighted contact graphs.
type GraphBuilder interface {
	// BuildGraph builds a contact graph from a non-empty co-occurrence list.
	BuildGraph(cooccurrences []types.Cooccurrence) (*graph.Graph, error)
}

// Network is the full detection pipeline: detect, classify, and build the
// systematic and random graphs in one call.
type Network interface {
	Detector
	Classifier
	GraphBuilder

	// Run executes all three stages over the event stream.
	Run(ctx context.Context, events []types.Event) (*Result, error)
}

// Compile-time interface checks
var (
	_ Network = (*Pipeline)(nil)
)
