package graphfile

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel validation errors.
var (
	// ErrEmptyGraph indicates a definition without vertices.
	ErrEmptyGraph = errors.New("graphfile: no vertices defined")

	// ErrDuplicateVertex indicates a label listed twice (or empty).
	ErrDuplicateVertex = errors.New("graphfile: duplicate or empty vertex label")

	// ErrUnknownEndpoint indicates an edge referencing an undeclared vertex.
	ErrUnknownEndpoint = errors.New("graphfile: edge endpoint not declared")

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = errors.New("graphfile: bad edge weight")
)

// Spec is the in-memory form of a graph definition file.
type Spec struct {
	Name     string     `yaml:"name,omitempty"`
	Vertices []string   `yaml:"vertices"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one undirected weighted edge.
type EdgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Validate checks the definition without building a graph.
func (s *Spec) Validate() error {
	if len(s.Vertices) == 0 {
		return ErrEmptyGraph
	}

	seen := make(map[string]struct{}, len(s.Vertices))
	for i, v := range s.Vertices {
		if _, dup := seen[v]; dup || v == "" {
			return fmt.Errorf("%w: vertices[%d] %q", ErrDuplicateVertex, i, v)
		}
		seen[v] = struct{}{}
	}

	for i, e := range s.Edges {
		if _, ok := seen[e.From]; !ok {
			return fmt.Errorf("%w: edges[%d].from %q", ErrUnknownEndpoint, i, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			return fmt.Errorf("%w: edges[%d].to %q", ErrUnknownEndpoint, i, e.To)
		}
		if math.IsNaN(e.Weight) {
			return fmt.Errorf("%w: edges[%d]", ErrBadWeight, i)
		}
	}

	return nil
}

// Reference returns the 8-vertex demonstration graph v1..v8.
func Reference() *Spec {
	return &Spec{
		Name:     "reference",
		Vertices: []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8"},
		Edges: []EdgeSpec{
			{From: "v1", To: "v3", Weight: 1},
			{From: "v1", To: "v4", Weight: 2},
			{From: "v4", To: "v5", Weight: 8},
			{From: "v4", To: "v6", Weight: 3},
			{From: "v5", To: "v6", Weight: 4},
			{From: "v1", To: "v7", Weight: 20},
			{From: "v1", To: "v8", Weight: 10},
			{From: "v1", To: "v2", Weight: 7},
			{From: "v8", To: "v7", Weight: 1},
			{From: "v8", To: "v2", Weight: 6},
			{From: "v2", To: "v7", Weight: 1},
		},
	}
}
