package graphjson

import (
	"errors"

	"github.com/citygrid/taskgraph/core"
)

// Sentinel errors returned by the JSON codec.
var (
	// ErrNilGraph indicates that a nil graph was passed to Marshal or Save.
	ErrNilGraph = errors.New("graphjson: graph is nil")

	// ErrInvalidDocument indicates that the document parsed but lacks the
	// required vertices or edges arrays.
	ErrInvalidDocument = errors.New("graphjson: vertices or edges array missing")

	// ErrMalformedJSON indicates input that could not be decoded even
	// after a repair pass.
	ErrMalformedJSON = errors.New("graphjson: malformed JSON")
)

// Document is the on-disk form of a task graph.
type Document struct {
	// UseNodeDurations selects the graph mode. Absent means node
	// durations, matching the core default.
	UseNodeDurations *bool `json:"useNodeDurations,omitempty"`

	// VertexCount and EdgeCount are informational; the arrays are the
	// source of truth on load.
	VertexCount int `json:"vertexCount"`
	EdgeCount   int `json:"edgeCount"`

	Vertices []VertexRecord `json:"vertices"`
	Edges    []EdgeRecord   `json:"edges"`

	// Statistics is a write-time snapshot; ignored on load.
	Statistics *core.Stats `json:"statistics,omitempty"`
}

// VertexRecord is the document form of one task.
type VertexRecord struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Duration    int64         `json:"duration"`
	Kind        core.TaskKind `json:"type"`
	Description string        `json:"description,omitempty"`
}

// EdgeRecord is the document form of one dependency.
type EdgeRecord struct {
	From        int64               `json:"from"`
	To          int64               `json:"to"`
	Weight      int64               `json:"weight"`
	Kind        core.DependencyKind `json:"type"`
	Description string              `json:"description,omitempty"`
}
