// SPDX-License-Identifier: MIT
//
// Package loader reads graph and heuristic documents written in YAML and
// builds core.Graph values from them.
//
// Document format:
//
//	nodes: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 10}
//	  - {from: B, to: C, weight: 7}
//	heuristic:            # optional; omitted means a zero table over nodes
//	  A: {A: 0, B: 10, C: 17}
//	  B: {A: 10, B: 0, C: 7}
//	  C: {A: 17, B: 7, C: 0}
//
// Unknown keys are rejected. Decoding errors are wrapped with %w; structural
// errors found by Build carry the core error taxonomy.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors for malformed documents.
var (
	// ErrEmptyDocument is returned when the input holds no YAML document.
	ErrEmptyDocument = fmt.Errorf("%w: loader: empty document", core.ErrInvalidArgument)
	// ErrMissingWeight is returned for an edge without a weight key.
	ErrMissingWeight = fmt.Errorf("%w: loader: edge without weight", core.ErrInvalidArgument)
)

// Edge is one undirected edge declaration.
type Edge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight"`
}

// Document is the decoded form of a graph file.
type Document struct {
	Nodes     []string                      `yaml:"nodes"`
	Edges     []Edge                        `yaml:"edges"`
	Heuristic map[string]map[string]float64 `yaml:"heuristic,omitempty"`
}

// Load decodes a single Document from r in strict mode.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("loader: decode: %w", err)
	}

	return &doc, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Table returns the document's heuristic table, or a zero table over Nodes
// when none was declared.
func (d *Document) Table() core.Table[string] {
	if d.Heuristic == nil {
		return core.ZeroTable(d.Nodes...)
	}

	return core.Table[string](d.Heuristic)
}

// Build constructs a graph from the document.
//
// Implementation:
//   - Stage 1: Create the graph over Table(); the table is validated and copied.
//   - Stage 2: Add nodes in declaration order (duplicates are no-ops).
//   - Stage 3: Add edges in declaration order; a repeated pair overwrites its weight.
//
// Errors name the offending node or edge position and wrap the core sentinel
// (ErrZeroNode, ErrNoHeuristicRow, ErrBadWeight, ErrNodeNotFound, ...).
func (d *Document) Build() (*core.Graph[string], error) {
	g, err := core.NewGraph(d.Table(), core.WithCapacity(len(d.Nodes)))
	if err != nil {
		return nil, fmt.Errorf("loader: heuristic: %w", err)
	}

	for i, id := range d.Nodes {
		if err = g.AddNode(id); err != nil {
			return nil, fmt.Errorf("loader: nodes[%d] %q: %w", i, id, err)
		}
	}

	for i, e := range d.Edges {
		if e.Weight == nil {
			return nil, fmt.Errorf("%w: edges[%d] %s—%s", ErrMissingWeight, i, e.From, e.To)
		}
		if err = g.AddEdge(e.From, e.To, *e.Weight); err != nil {
			return nil, fmt.Errorf("loader: edges[%d] %s—%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
