package graphjson

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/citygrid/taskgraph/core"
)

// Marshal renders g as an indented JSON document.
func Marshal(g *core.Graph) ([]byte, error) {
	doc, err := ToDocument(g)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal decodes a JSON document into a fresh graph. Syntactically
// broken input gets one repair pass before the decode is abandoned.
func Unmarshal(data []byte) (*core.Graph, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
		if err = json.Unmarshal([]byte(repaired), &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
	}

	return FromDocument(&doc)
}

// ToDocument converts a graph to its document form, including the
// write-time statistics snapshot.
func ToDocument(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	mode := g.UseNodeDurations()
	stats := g.Stats()
	doc := &Document{
		UseNodeDurations: &mode,
		VertexCount:      g.VertexCount(),
		EdgeCount:        g.EdgeCount(),
		Vertices:         make([]VertexRecord, 0, g.VertexCount()),
		Edges:            make([]EdgeRecord, 0, g.EdgeCount()),
		Statistics:       &stats,
	}

	for _, v := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, VertexRecord{
			ID:          v.ID(),
			Name:        v.Name(),
			Duration:    v.Duration(),
			Kind:        v.Kind(),
			Description: v.Description(),
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeRecord{
			From:        e.From,
			To:          e.To,
			Weight:      e.Weight,
			Kind:        e.Kind,
			Description: e.Description,
		})
	}

	return doc, nil
}

// FromDocument builds a graph from its document form. Vertices load
// before edges, so every edge endpoint must name a declared vertex.
func FromDocument(doc *Document) (*core.Graph, error) {
	if doc == nil || doc.Vertices == nil || doc.Edges == nil {
		return nil, ErrInvalidDocument
	}

	var gopts []core.GraphOption
	if doc.UseNodeDurations != nil && !*doc.UseNodeDurations {
		gopts = append(gopts, core.WithEdgeWeights())
	}
	g := core.NewGraph(gopts...)

	for _, rec := range doc.Vertices {
		_, err := g.AddVertex(rec.ID, rec.Name,
			core.WithDuration(rec.Duration),
			core.WithKind(rec.Kind),
			core.WithDescription(rec.Description))
		if err != nil {
			return nil, fmt.Errorf("graphjson: vertex %d: %w", rec.ID, err)
		}
	}
	for _, rec := range doc.Edges {
		_, err := g.AddEdge(rec.From, rec.To, rec.Weight,
			core.WithEdgeKind(rec.Kind),
			core.WithEdgeDescription(rec.Description))
		if err != nil {
			return nil, fmt.Errorf("graphjson: edge %d→%d: %w", rec.From, rec.To, err)
		}
	}

	return g, nil
}

// IsValid reports whether data decodes to a document carrying both the
// vertices and edges arrays. Repairable syntax counts as valid.
func IsValid(data []byte) bool {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return false
		}
		if err = json.Unmarshal([]byte(repaired), &doc); err != nil {
			return false
		}
	}

	return doc.Vertices != nil && doc.Edges != nil
}
