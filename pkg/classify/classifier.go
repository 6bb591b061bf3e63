// Package classify partitions co-occurrences into systematic and random
// contact by the time span each entity pair covers.
package classify

import (
	"context"
	"log/slog"
	"time"

	"github.com/soundprediction/cooccur/pkg/types"
)

// Classifier splits a co-occurrence list into a systematic subset (pairs
// whose contacts span more than minSpan) and a random subset (everything
// else). A pair is never split across both outputs.
type Classifier struct {
	minSpan time.Duration
	logger  *slog.Logger
}

// New creates a Classifier. minSpan must not be negative. A zero minSpan is
// a degenerate configuration under which every pair with two distinct
// contact times is systematic.
func New(minSpan time.Duration, logger *slog.Logger) (*Classifier, error) {
	if minSpan < 0 {
		return nil, types.ErrNegativeMinSpan
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{minSpan: minSpan, logger: logger}, nil
}

// MinSpan returns the configured systematic/random threshold.
func (c *Classifier) MinSpan() time.Duration {
	return c.minSpan
}

// Classify partitions the input into (systematic, random). Within each
// output, pair groups appear contiguously in the order their pair was first
// encountered in the input. An empty input yields two empty lists.
func (c *Classifier) Classify(ctx context.Context, cooccurrences []types.Cooccurrence) ([]types.Cooccurrence, []types.Cooccurrence, error) {
	groups := make(map[types.Pair][]types.Cooccurrence)
	var order []types.Pair
	for _, cc := range cooccurrences {
		pair := cc.Pair()
		if _, seen := groups[pair]; !seen {
			order = append(order, pair)
		}
		groups[pair] = append(groups[pair], cc)
	}

	var systematic, random []types.Cooccurrence
	for _, pair := range order {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		group := groups[pair]
		types.SortCooccurrences(group)
		// After sorting, the first and last records are the chronological
		// extremes of the pair's contact history.
		span := group[len(group)-1].Time.Sub(group[0].Time)
		if span > c.minSpan {
			systematic = append(systematic, group...)
		} else {
			random = append(random, group...)
		}
	}

	c.logger.Debug("classified co-occurrences",
		"pairs", len(order),
		"systematic", len(systematic),
		"random", len(random))
	return systematic, random, nil
}
