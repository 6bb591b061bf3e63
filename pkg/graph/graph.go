// Package graph builds weighted undirected contact graphs from classified
// co-occurrence lists.
package graph

import (
	"errors"
	"time"

	"github.com/soundprediction/cooccur/pkg/types"
)

// ErrNoCooccurrences is returned by Build when the input list is empty.
var ErrNoCooccurrences = errors.New("no co-occurrences to build a graph from")

// Node is an entity that participated in at least one co-occurrence. Time is
// the time of the entity's latest contributing event.
type Node struct {
	Entity string    `json:"entity"`
	Time   time.Time `json:"time"`
}

// Edge is an undirected contact between two entities. Source and Target are
// the pair's canonical order, Weight counts the co-occurrence records behind
// the edge, and LastSeen is the latest co-occurrence time on the pair.
type Edge struct {
	Source   string    `json:"source"`
	Target   string    `json:"target"`
	Weight   int       `json:"weight"`
	LastSeen time.Time `json:"last_seen"`
}

// Graph is a weighted undirected contact graph. Nodes and edges iterate in
// the order they were first added, so two builds over the same input produce
// identical traversals.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[types.Pair]*Edge
	edgeOrder []types.Pair
	finalDate time.Time
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[types.Pair]*Edge),
	}
}

// Build folds a co-occurrence list into a contact graph. The list must not
// be empty. FinalDate is taken from the last element of the input, so
// callers who need the chronological maximum must pass a chronologically
// sorted list.
func Build(cooccurrences []types.Cooccurrence) (*Graph, error) {
	if len(cooccurrences) == 0 {
		return nil, ErrNoCooccurrences
	}

	g := NewGraph()
	for _, cc := range cooccurrences {
		g.add(cc)
	}
	g.finalDate = cooccurrences[len(cooccurrences)-1].Time
	return g, nil
}

// add upserts both endpoint nodes and the pair's edge. Node times are
// last-write-wins from each event's own time; edge weight counts records.
func (g *Graph) add(cc types.Cooccurrence) {
	g.upsertNode(cc.Event.Entity, cc.Event.Time)
	g.upsertNode(cc.OtherEvent.Entity, cc.OtherEvent.Time)

	pair := cc.Pair()
	edge, ok := g.edges[pair]
	if !ok {
		edge = &Edge{Source: pair.A, Target: pair.B}
		g.edges[pair] = edge
		g.edgeOrder = append(g.edgeOrder, pair)
	}
	edge.Weight++
	if cc.Time.After(edge.LastSeen) {
		edge.LastSeen = cc.Time
	}
}

func (g *Graph) upsertNode(entity string, at time.Time) {
	node, ok := g.nodes[entity]
	if !ok {
		node = &Node{Entity: entity}
		g.nodes[entity] = node
		g.nodeOrder = append(g.nodeOrder, entity)
	}
	node.Time = at
}

// Merge combines two graphs into a new one. Shared edges sum their weights;
// shared nodes and edges take the later of the two times, as does FinalDate.
// Ordering follows g's insertion order with other's novel entries appended.
func Merge(g, other *Graph) *Graph {
	merged := NewGraph()
	for _, src := range []*Graph{g, other} {
		for _, entity := range src.nodeOrder {
			node := src.nodes[entity]
			existing, ok := merged.nodes[entity]
			if !ok {
				merged.nodes[entity] = &Node{Entity: entity, Time: node.Time}
				merged.nodeOrder = append(merged.nodeOrder, entity)
			} else if node.Time.After(existing.Time) {
				existing.Time = node.Time
			}
		}
		for _, pair := range src.edgeOrder {
			edge := src.edges[pair]
			existing, ok := merged.edges[pair]
			if !ok {
				copied := *edge
				merged.edges[pair] = &copied
				merged.edgeOrder = append(merged.edgeOrder, pair)
				continue
			}
			existing.Weight += edge.Weight
			if edge.LastSeen.After(existing.LastSeen) {
				existing.LastSeen = edge.LastSeen
			}
		}
		if src.finalDate.After(merged.finalDate) {
			merged.finalDate = src.finalDate
		}
	}
	return merged
}

// Node returns the node for an entity, or false when the entity is absent.
func (g *Graph) Node(entity string) (Node, bool) {
	node, ok := g.nodes[entity]
	if !ok {
		return Node{}, false
	}
	return *node, true
}

// Weight returns the edge weight between two entities in either argument
// order, or zero when no edge exists.
func (g *Graph) Weight(u, v string) int {
	edge, ok := g.edges[types.NewPair(u, v)]
	if !ok {
		return 0
	}
	return edge.Weight
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodeOrder))
	for _, entity := range g.nodeOrder {
		nodes = append(nodes, *g.nodes[entity])
	}
	return nodes
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edgeOrder))
	for _, pair := range g.edgeOrder {
		edges = append(edges, *g.edges[pair])
	}
	return edges
}

// NodeCount returns the number of distinct entities in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct entity pairs in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// FinalDate returns the graph's closing timestamp.
func (g *Graph) FinalDate() time.Time {
	return g.finalDate
}
