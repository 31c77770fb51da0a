package graph

import (
	"fmt"
	"weak"

	"git.canoozie.net/riddling/tinkerbind/pkg/model"
	"git.canoozie.net/riddling/tinkerbind/pkg/native"
)

// Edge is the host-side mirror of a native edge: identity, a required
// label, references to its two endpoint vertices and a property overlay.
// Both endpoints always belong to the same Graph as the edge.
type Edge struct {
	graph    weak.Pointer[Graph]
	handle   native.Handle
	id       string
	label    string
	out      *Vertex
	in       *Vertex
	props    model.Properties
	disposed bool
}

// ID returns the edge id
func (e *Edge) ID() string {
	return e.id
}

// Label returns the edge label
func (e *Edge) Label() string {
	return e.label
}

// OutVertex returns the source endpoint
func (e *Edge) OutVertex() *Vertex {
	return e.out
}

// InVertex returns the target endpoint
func (e *Edge) InVertex() *Vertex {
	return e.in
}

// owner resolves the back-reference. Nil when the graph has been reclaimed.
func (e *Edge) owner() *Graph {
	return e.graph.Value()
}

// Property retrieves a property from the overlay
func (e *Edge) Property(key string) (model.Value, bool) {
	return e.props.Get(key)
}

// PropertyOr retrieves a property from the overlay, returning def when absent
func (e *Edge) PropertyOr(key string, def model.Value) model.Value {
	return e.props.GetOr(key, def)
}

// SetProperty sets a property on the overlay only. Properties set after
// creation are not pushed back into the native domain; only creation-time
// properties cross the boundary.
func (e *Edge) SetProperty(key string, value model.Value) error {
	if key == "" {
		return &ErrValidation{Param: "key", Reason: "expected a non-empty string"}
	}
	e.props.Set(key, value)
	return nil
}

// RemoveProperty removes a property from the overlay and returns the
// previous value, if any
func (e *Edge) RemoveProperty(key string) (model.Value, bool) {
	return e.props.Remove(key)
}

// Properties returns the live property overlay
func (e *Edge) Properties() model.Properties {
	return e.props
}

// Other returns the endpoint opposite to v. It fails with a validation
// error when v is neither endpoint.
func (e *Edge) Other(v *Vertex) (*Vertex, error) {
	switch {
	case e.out.Equal(v):
		return e.in, nil
	case e.in.Equal(v):
		return e.out, nil
	default:
		return nil, &ErrValidation{Param: "vertex", Reason: "vertex is not connected to this edge"}
	}
}

// Equal reports whether two wrappers denote the same edge: same id and same
// owning graph
func (e *Edge) Equal(other *Edge) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.id == other.id && e.graph == other.graph
}

// String renders the edge with its endpoints and overlay
func (e *Edge) String() string {
	return fmt.Sprintf("Edge(id=%s, label=%s, out=%s, in=%s, properties=%v)",
		e.id, e.label, e.out.ID(), e.in.ID(), e.props)
}

// cleanup releases the native edge handle. Idempotent; tolerates a
// reclaimed parent graph; never fails.
func (e *Edge) cleanup() {
	if e.disposed {
		return
	}
	e.disposed = true
	if g := e.owner(); g != nil {
		g.api.DestroyEdge(e.handle)
	}
}
