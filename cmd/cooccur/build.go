package cooccur

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	root "github.com/soundprediction/cooccur"
	"github.com/soundprediction/cooccur/pkg/config"
	"github.com/soundprediction/cooccur/pkg/graph"
	"github.com/soundprediction/cooccur/pkg/ingest"
	"github.com/soundprediction/cooccur/pkg/logger"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build contact graphs from an event file",
	Long: `Build reads entity events from a parquet file, runs co-occurrence
detection and systematic/random classification, and writes the resulting
contact graphs as parquet files.

Thresholds come from config files, environment variables, or flags.`,
	RunE: runBuild,
}

var (
	buildEventsPath string
	buildOutPath    string
	buildMaxGap     string
	buildMinSpan    string
	buildWorkers    int
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildEventsPath, "events", "", "Path to the events parquet file (required)")
	buildCmd.Flags().StringVar(&buildOutPath, "out", "", "Output directory for graph parquet files")
	buildCmd.Flags().StringVar(&buildMaxGap, "max-gap", "", "Co-occurrence window width, e.g. 5m")
	buildCmd.Flags().StringVar(&buildMinSpan, "min-span", "", "Systematic contact threshold, e.g. 2h")
	buildCmd.Flags().IntVar(&buildWorkers, "concurrency", 0, "Parallel location scans (0 = GOMAXPROCS)")
	buildCmd.MarkFlagRequired("events")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := overrideBuildConfig(cmd, cfg); err != nil {
		return err
	}

	log := logger.NewDefaultLogger(logger.ParseLevel(cfg.Log.Level))

	events, err := ingest.ReadEvents(buildEventsPath)
	if err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	log.Info("loaded events", "path", buildEventsPath, "count", len(events))

	pipeline, err := root.New(&root.Config{
		MaxGap:         cfg.Pipeline.MaxGap,
		MinSpan:        cfg.Pipeline.MinSpan,
		MaxConcurrency: cfg.Pipeline.MaxConcurrency,
	}, log)
	if err != nil {
		return fmt.Errorf("invalid thresholds: %w", err)
	}

	result, err := pipeline.Run(context.Background(), events)
	if err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}

	writer, err := graph.NewParquetGraphWriter(cfg.Export.ParquetPath)
	if err != nil {
		return fmt.Errorf("failed to create graph writer: %w", err)
	}

	if result.SystematicGraph != nil {
		runID, err := writer.WriteGraph(result.SystematicGraph, "systematic")
		if err != nil {
			return fmt.Errorf("failed to write systematic graph: %w", err)
		}
		log.Info("persisting systematic graph",
			"run_id", runID,
			"nodes", result.SystematicGraph.NodeCount(),
			"edges", result.SystematicGraph.EdgeCount())
	}
	if result.RandomGraph != nil {
		runID, err := writer.WriteGraph(result.RandomGraph, "random")
		if err != nil {
			return fmt.Errorf("failed to write random graph: %w", err)
		}
		log.Info("persisting random graph",
			"run_id", runID,
			"nodes", result.RandomGraph.NodeCount(),
			"edges", result.RandomGraph.EdgeCount())
	}

	fmt.Printf("Processed %d events: %d co-occurrences (%d systematic, %d random)\n",
		len(events), len(result.Cooccurrences), len(result.Systematic), len(result.Random))
	return nil
}

func overrideBuildConfig(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("max-gap") {
		parsed, err := time.ParseDuration(buildMaxGap)
		if err != nil {
			return fmt.Errorf("invalid --max-gap: %w", err)
		}
		cfg.Pipeline.MaxGap = parsed
	}
	if cmd.Flags().Changed("min-span") {
		parsed, err := time.ParseDuration(buildMinSpan)
		if err != nil {
			return fmt.Errorf("invalid --min-span: %w", err)
		}
		cfg.Pipeline.MinSpan = parsed
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Pipeline.MaxConcurrency = buildWorkers
	}
	if cmd.Flags().Changed("out") {
		cfg.Export.ParquetPath = buildOutPath
	}
	return nil
}
