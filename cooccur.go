package cooccur

import (
	"context"
	"log/slog"
	"time"

	"github.com/soundprediction/cooccur/pkg/classify"
	"github.com/soundprediction/cooccur/pkg/detect"
	"github.com/soundprediction/cooccur/pkg/graph"
	"github.com/soundprediction/cooccur/pkg/types"
)

// Config holds the pipeline thresholds.
type Config struct {
	// MaxGap is the sliding window width: two events co-occur when they are
	// strictly closer than MaxGap in the same location group.
	MaxGap time.Duration

	// MinSpan is the classification threshold: a pair whose contacts span
	// strictly more than MinSpan is systematic.
	MinSpan time.Duration

	// MaxConcurrency bounds parallel location-group scans in Run and
	// DetectConcurrent. Non-positive means GOMAXPROCS.
	MaxConcurrency int
}

// Result holds the output of a full pipeline run. SystematicGraph or
// RandomGraph is nil when the corresponding subset is empty.
type Result struct {
	Cooccurrences []types.Cooccurrence
	Systematic    []types.Cooccurrence
	Random        []types.Cooccurrence

	SystematicGraph *graph.Graph
	RandomGraph     *graph.Graph
}

// Pipeline wires the detection, classification, and graph construction
// stages behind one configuration.
type Pipeline struct {
	detector   *detect.Detector
	classifier *classify.Classifier
	config     *Config
	logger     *slog.Logger
}

// New creates a Pipeline. cfg must not be nil; its thresholds must not be
// negative. A nil logger falls back to slog.Default.
func New(cfg *Config, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}

	detector, err := detect.New(cfg.MaxGap, logger)
	if err != nil {
		return nil, err
	}
	classifier, err := classify.New(cfg.MinSpan, logger)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		detector:   detector,
		classifier: classifier,
		config:     cfg,
		logger:     logger,
	}, nil
}

// Detect runs the windowed co-occurrence scan over the event stream.
func (p *Pipeline) Detect(ctx context.Context, events []types.Event) ([]types.Cooccurrence, error) {
	if p.config.MaxConcurrency > 1 {
		return p.detector.DetectConcurrent(ctx, events, p.config.MaxConcurrency)
	}
	return p.detector.Detect(ctx, events)
}

// Classify partitions co-occurrences into the systematic and random subsets.
func (p *Pipeline) Classify(ctx context.Context, cooccurrences []types.Cooccurrence) ([]types.Cooccurrence, []types.Cooccurrence, error) {
	return p.classifier.Classify(ctx, cooccurrences)
}

// BuildGraph folds a co-occurrence list into a weighted contact graph.
func (p *Pipeline) BuildGraph(cooccurrences []types.Cooccurrence) (*graph.Graph, error) {
	return graph.Build(cooccurrences)
}

// Run executes the full pipeline. The co-occurrence lists in the result are
// always populated; each graph is built only when its subset is non-empty.
func (p *Pipeline) Run(ctx context.Context, events []types.Event) (*Result, error) {
	cooccurrences, err := p.Detect(ctx, events)
	if err != nil {
		return nil, err
	}

	systematic, random, err := p.Classify(ctx, cooccurrences)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Cooccurrences: cooccurrences,
		Systematic:    systematic,
		Random:        random,
	}
	if len(systematic) > 0 {
		if result.SystematicGraph, err = graph.Build(systematic); err != nil {
			return nil, err
		}
	}
	if len(random) > 0 {
		if result.RandomGraph, err = graph.Build(random); err != nil {
			return nil, err
		}
	}

	p.logger.Info("pipeline run complete",
		"events", len(events),
		"cooccurrences", len(cooccurrences),
		"systematic", len(systematic),
		"random", len(random))
	return result, nil
}
