// Package cooccur builds weighted contact networks from entity event streams.
//
// The pipeline has three stages: windowed co-occurrence detection over
// location-grouped events, systematic/random classification by the time span
// each entity pair covers, and graph construction from each classified
// subset.
//
// # Basic Usage
//
// Create a pipeline with the two thresholds and run it over a chronologically
// ordered event stream:
//
//	pipeline, err := cooccur.New(&cooccur.Config{
//		MaxGap:  5 * time.Minute,
//		MinSpan: 2 * time.Hour,
//	}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := pipeline.Run(ctx, events)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("systematic contacts: %d edges\n", result.SystematicGraph.EdgeCount())
//
// # Stages
//
// Each stage is also available on its own when only part of the pipeline is
// needed:
//
//	cooccurrences, err := pipeline.Detect(ctx, events)
//	systematic, random, err := pipeline.Classify(ctx, cooccurrences)
//	g, err := pipeline.BuildGraph(cooccurrences)
//
// Events within a location group must be in chronological order; the loaders
// in pkg/ingest sort on read.
package cooccur
