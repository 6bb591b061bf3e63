package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
)

// ParquetGraphWriter persists contact graphs as parquet files, one nodes
// file and one edges file per call, grouped under a run directory.
type ParquetGraphWriter struct {
	baseDir string
}

// NewParquetGraphWriter creates a writer rooted at baseDir, creating the
// nodes and edges subdirectories if needed.
func NewParquetGraphWriter(baseDir string) (*ParquetGraphWriter, error) {
	for _, d := range []string{"nodes", "edges"} {
		if err := os.MkdirAll(filepath.Join(baseDir, d), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}
	return &ParquetGraphWriter{baseDir: baseDir}, nil
}

// ParquetNode is the parquet schema for a graph node.
type ParquetNode struct {
	RunID     string    `parquet:"run_id"`
	Label     string    `parquet:"label"` // systematic or random
	Entity    string    `parquet:"entity"`
	Time      time.Time `parquet:"time"`
	FinalDate time.Time `parquet:"final_date"`
}

// ParquetEdge is the parquet schema for a graph edge.
type ParquetEdge struct {
	RunID    string    `parquet:"run_id"`
	Label    string    `parquet:"label"`
	Source   string    `parquet:"source"`
	Target   string    `parquet:"target"`
	Weight   int64     `parquet:"weight"`
	LastSeen time.Time `parquet:"last_seen"`
}

// WriteGraph writes one graph under a fresh run ID and returns that ID.
// label distinguishes graphs written from the same run, typically
// "systematic" or "random".
func (w *ParquetGraphWriter) WriteGraph(g *Graph, label string) (string, error) {
	runID := uuid.New().String()
	if err := w.writeNodes(g, label, runID); err != nil {
		return "", err
	}
	if err := w.writeEdges(g, label, runID); err != nil {
		return "", err
	}
	return runID, nil
}

func (w *ParquetGraphWriter) writeNodes(g *Graph, label, runID string) error {
	nodes := g.Nodes()
	rows := make([]ParquetNode, 0, len(nodes))
	for _, node := range nodes {
		rows = append(rows, ParquetNode{
			RunID:     runID,
			Label:     label,
			Entity:    node.Entity,
			Time:      node.Time,
			FinalDate: g.FinalDate(),
		})
	}

	path := filepath.Join(w.baseDir, "nodes", fmt.Sprintf("nodes_%s_%s.parquet", label, runID))
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write nodes file: %w", err)
	}
	return nil
}

func (w *ParquetGraphWriter) writeEdges(g *Graph, label, runID string) error {
	edges := g.Edges()
	rows := make([]ParquetEdge, 0, len(edges))
	for _, edge := range edges {
		rows = append(rows, ParquetEdge{
			RunID:    runID,
			Label:    label,
			Source:   edge.Source,
			Target:   edge.Target,
			Weight:   int64(edge.Weight),
			LastSeen: edge.LastSeen,
		})
	}

	path := filepath.Join(w.baseDir, "edges", fmt.Sprintf("edges_%s_%s.parquet", label, runID))
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write edges file: %w", err)
	}
	return nil
}

// ReadNodes loads every node row written for a run ID.
func (w *ParquetGraphWriter) ReadNodes(label, runID string) ([]ParquetNode, error) {
	path := filepath.Join(w.baseDir, "nodes", fmt.Sprintf("nodes_%s_%s.parquet", label, runID))
	rows, err := parquet.ReadFile[ParquetNode](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nodes file: %w", err)
	}
	return rows, nil
}

// ReadEdges loads every edge row written for a run ID.
func (w *ParquetGraphWriter) ReadEdges(label, runID string) ([]ParquetEdge, error) {
	path := filepath.Join(w.baseDir, "edges", fmt.Sprintf("edges_%s_%s.parquet", label, runID))
	rows, err := parquet.ReadFile[ParquetEdge](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edges file: %w", err)
	}
	return rows, nil
}
