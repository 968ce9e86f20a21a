package core

import (
	"fmt"
	"strings"
)

// Vertex represents a single task in the dependency graph.
//
// The ID is fixed at construction and uniquely identifies the vertex
// within its Graph; equality and identity hashing are based on the ID
// alone. Name, Duration, Kind, and Description are mutable through
// setters that enforce the model invariants (trimmed non-empty name,
// non-negative duration, closed kind enumeration).
type Vertex struct {
	id          int64
	name        string
	duration    int64
	kind        TaskKind
	description string
}

// VertexOption configures optional fields of a Vertex at construction.
type VertexOption func(*Vertex)

// WithDuration sets the initial task duration. Negative values clamp to 0.
func WithDuration(d int64) VertexOption {
	return func(v *Vertex) { v.SetDuration(d) }
}

// WithKind sets the task kind. Invalid kinds fall back to KindOther.
func WithKind(k TaskKind) VertexOption {
	return func(v *Vertex) { v.SetKind(k) }
}

// WithDescription sets the task description (stored trimmed).
func WithDescription(s string) VertexOption {
	return func(v *Vertex) { v.SetDescription(s) }
}

// NewVertex constructs a Vertex with the given identity and name.
// The ID must be non-negative and the name non-empty after trimming;
// violations return ErrNegativeID or ErrEmptyName.
func NewVertex(id int64, name string, opts ...VertexOption) (*Vertex, error) {
	// 1. Validate identity and display name.
	if id < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: vertex %d", ErrEmptyName, id)
	}

	// 2. Fill defaults, then apply options in order.
	v := &Vertex{id: id, name: trimmed, kind: KindOther}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// ID returns the immutable vertex identity.
func (v *Vertex) ID() int64 { return v.id }

// Name returns the display name.
func (v *Vertex) Name() string { return v.name }

// Duration returns the task duration (always non-negative).
func (v *Vertex) Duration() int64 { return v.duration }

// Kind returns the task category.
func (v *Vertex) Kind() TaskKind { return v.kind }

// Description returns the task description.
func (v *Vertex) Description() string { return v.description }

// SetName replaces the display name. The new name must be non-empty
// after trimming; otherwise ErrEmptyName is returned and the vertex is
// left unchanged.
func (v *Vertex) SetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: vertex %d", ErrEmptyName, v.id)
	}
	v.name = trimmed

	return nil
}

// SetDuration replaces the task duration, clamping negatives to 0.
func (v *Vertex) SetDuration(d int64) {
	if d < 0 {
		d = 0
	}
	v.duration = d
}

// SetKind replaces the task kind; invalid values fall back to KindOther.
func (v *Vertex) SetKind(k TaskKind) {
	if !k.Valid() {
		k = KindOther
	}
	v.kind = k
}

// SetDescription replaces the description (stored trimmed).
func (v *Vertex) SetDescription(s string) {
	v.description = strings.TrimSpace(s)
}

// Equal reports identity equality: two vertices are equal iff their IDs
// match, regardless of any mutable field.
func (v *Vertex) Equal(other *Vertex) bool {
	return other != nil && v.id == other.id
}

// Critical reports whether the task is considered critical on its own:
// long-running, or in a category that must never slip.
func (v *Vertex) Critical() bool {
	return v.duration > criticalDurationThreshold ||
		v.kind == KindSafety ||
		v.kind == KindUtilities
}

// criticalDurationThreshold is the duration above which any task counts
// as critical regardless of kind.
const criticalDurationThreshold = 10

// clone returns an independent value copy of v.
func (v *Vertex) clone() *Vertex {
	c := *v

	return &c
}

// String returns a compact single-line form for logs and test failures.
func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex{id=%d, name=%q, duration=%d, kind=%s}",
		v.id, v.name, v.duration, v.kind)
}
