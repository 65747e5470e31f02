package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/core"
)

// Load reads and validates the definition at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a YAML definition. Unknown keys are errors.
func Parse(data []byte) (*Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Spec
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyGraph
		}
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Build validates s and creates the graph: vertices first, in order, then edges.
func (s *Spec) Build() (*core.Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithCapacity(len(s.Vertices)))
	for _, v := range s.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for i, e := range s.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return g, nil
}
