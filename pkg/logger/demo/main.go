package main

import (
	"log/slog"

	"github.com/soundprediction/cooccur/pkg/logger"
)

func main() {
	// Create a colored logger
	log := logger.NewDefaultLogger(slog.LevelDebug)

	log.Info("============================================")
	log.Info("    Cooccur Colored Logger Demo")
	log.Info("============================================")
	log.Info("")

	log.Debug("Debug message - standard color")
	log.Info("Info message - standard color")
	log.Info("Persisting graph nodes - green!")
	log.Info("Graph nodes persisted successfully - also green!")
	log.Warn("Warning message - yellow!")
	log.Error("Error message - red!")

	log.Info("")
	log.Info("Persistence operations are highlighted in green:")
	log.Info("Persisting systematic graph", "nodes", 42, "edges", 100)
	log.Info("Systematic graph persisted", "duration", "2.5s")
	log.Info("Persisting random graph", "nodes", 156, "edges", 310)
	log.Info("Random graph persisted", "duration", "1.8s")

	log.Info("")
	log.Warn("Warnings appear in yellow for attention")
	log.Error("Errors appear in red for immediate visibility")

	log.Info("")
	log.Info("Demo complete!")
}
