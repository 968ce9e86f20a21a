package core

import (
	"fmt"
	"strings"
)

// Edge represents a directed dependency between two tasks.
//
// From and To are vertex IDs that must already exist in the owning
// Graph when the edge is added. Weight carries the dependency cost;
// it may be negative only as the internal encoding of longest-path
// relaxation, never as caller-supplied input with meaning of its own.
// Equality is based on (From, To, Weight).
type Edge struct {
	// From is the source vertex ID.
	From int64

	// To is the destination vertex ID.
	To int64

	// Weight is the dependency cost used by edge-weight mode path solvers.
	Weight int64

	// Kind classifies the dependency relationship.
	Kind DependencyKind

	// Description is free-form detail about the dependency.
	Description string
}

// EdgeOption configures optional fields of an Edge when it is added.
type EdgeOption func(*Edge)

// WithEdgeKind sets the dependency kind; invalid values fall back to DepOther.
func WithEdgeKind(k DependencyKind) EdgeOption {
	return func(e *Edge) {
		if !k.Valid() {
			k = DepOther
		}
		e.Kind = k
	}
}

// WithEdgeDescription sets the dependency description (stored trimmed).
func WithEdgeDescription(s string) EdgeOption {
	return func(e *Edge) { e.Description = strings.TrimSpace(s) }
}

// IsSelfLoop reports whether the edge starts and ends on the same vertex.
// Self-loops are representable; the DAG path solver rejects graphs that
// contain one, since a self-loop is itself a cycle.
func (e *Edge) IsSelfLoop() bool {
	return e.From == e.To
}

// Equal reports whether two edges connect the same ordered pair with
// the same weight. Kind and Description do not participate.
func (e *Edge) Equal(other *Edge) bool {
	return other != nil && e.From == other.From && e.To == other.To && e.Weight == other.Weight
}

// Connects reports whether the edge runs from one given vertex to the other.
func (e *Edge) Connects(from, to int64) bool {
	return e.From == from && e.To == to
}

// Critical reports whether this dependency is timing- or
// location-binding and therefore must hold in any schedule.
func (e *Edge) Critical() bool {
	return e.Kind == DepTemporalConstraint || e.Kind == DepPhysicalConstraint
}

// clone returns an independent value copy of e.
func (e *Edge) clone() *Edge {
	c := *e

	return &c
}

// String returns a compact single-line form for logs and test failures.
func (e *Edge) String() string {
	return fmt.Sprintf("Edge{%d→%d, weight=%d, kind=%s}", e.From, e.To, e.Weight, e.Kind)
}
