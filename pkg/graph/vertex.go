package graph

import (
	"fmt"
	"weak"

	"git.canoozie.net/riddling/tinkerbind/pkg/model"
	"git.canoozie.net/riddling/tinkerbind/pkg/native"
)

// Vertex is the host-side mirror of a native vertex: identity, label and a
// property overlay, plus a non-owning back-reference to the Graph that
// created it. A Vertex is only valid with that graph; it degrades gracefully
// when the graph is closed or reclaimed (property access keeps working on
// the overlay, adjacency queries return nothing).
type Vertex struct {
	graph    weak.Pointer[Graph]
	handle   native.Handle
	id       string
	label    string
	props    model.Properties
	disposed bool
}

// ID returns the vertex id, unique within its graph
func (v *Vertex) ID() string {
	return v.id
}

// Label returns the vertex label
func (v *Vertex) Label() string {
	return v.label
}

// owner resolves the back-reference. Nil when the graph has been reclaimed.
func (v *Vertex) owner() *Graph {
	return v.graph.Value()
}

// Property retrieves a property from the overlay
func (v *Vertex) Property(key string) (model.Value, bool) {
	return v.props.Get(key)
}

// PropertyOr retrieves a property from the overlay, returning def when absent
func (v *Vertex) PropertyOr(key string, def model.Value) model.Value {
	return v.props.GetOr(key, def)
}

// SetProperty sets a property on the overlay only. Properties set after
// creation are not pushed back into the native domain; only creation-time
// properties cross the boundary.
func (v *Vertex) SetProperty(key string, value model.Value) error {
	if key == "" {
		return &ErrValidation{Param: "key", Reason: "expected a non-empty string"}
	}
	v.props.Set(key, value)
	return nil
}

// RemoveProperty removes a property from the overlay and returns the
// previous value, if any
func (v *Vertex) RemoveProperty(key string) (model.Value, bool) {
	return v.props.Remove(key)
}

// Properties returns the live property overlay
func (v *Vertex) Properties() model.Properties {
	return v.props
}

// OutEdges returns the edges leaving this vertex, optionally restricted to
// the given labels. Linear in the graph's live edge count.
func (v *Vertex) OutEdges(labels ...string) []*Edge {
	g := v.owner()
	if g == nil || g.closed {
		return nil
	}
	var out []*Edge
	for _, e := range g.edges {
		if e.out == v && matchesLabels(e.label, labels) {
			out = append(out, e)
		}
	}
	return out
}

// InEdges returns the edges arriving at this vertex, optionally restricted
// to the given labels
func (v *Vertex) InEdges(labels ...string) []*Edge {
	g := v.owner()
	if g == nil || g.closed {
		return nil
	}
	var in []*Edge
	for _, e := range g.edges {
		if e.in == v && matchesLabels(e.label, labels) {
			in = append(in, e)
		}
	}
	return in
}

// BothEdges returns outgoing then incoming edges. A self-loop appears once
// in each direction.
func (v *Vertex) BothEdges(labels ...string) []*Edge {
	return append(v.OutEdges(labels...), v.InEdges(labels...)...)
}

// OutVertices returns the target of every outgoing edge
func (v *Vertex) OutVertices(labels ...string) []*Vertex {
	edges := v.OutEdges(labels...)
	out := make([]*Vertex, len(edges))
	for i, e := range edges {
		out[i] = e.in
	}
	return out
}

// InVertices returns the source of every incoming edge
func (v *Vertex) InVertices(labels ...string) []*Vertex {
	edges := v.InEdges(labels...)
	in := make([]*Vertex, len(edges))
	for i, e := range edges {
		in[i] = e.out
	}
	return in
}

// BothVertices returns the neighbors in both directions
func (v *Vertex) BothVertices(labels ...string) []*Vertex {
	return append(v.OutVertices(labels...), v.InVertices(labels...)...)
}

// Equal reports whether two wrappers denote the same vertex: same id and
// same owning graph. Wrappers from different graphs are never equal.
func (v *Vertex) Equal(other *Vertex) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.id == other.id && v.graph == other.graph
}

// String renders the vertex with its overlay
func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex(id=%s, label=%s, properties=%v)", v.id, v.label, v.props)
}

// cleanup releases the native vertex handle. It is idempotent, tolerates a
// reclaimed parent graph and never fails; teardown must be safe to call from
// paths that are already handling an error.
func (v *Vertex) cleanup() {
	if v.disposed {
		return
	}
	v.disposed = true
	if g := v.owner(); g != nil {
		g.api.DestroyVertex(v.handle)
	}
}

// matchesLabels reports whether label is in the restriction set; an empty
// set matches every label
func matchesLabels(label string, labels []string) bool {
	if len(labels) == 0 {
		return true
	}
	for _, candidate := range labels {
		if label == candidate {
			return true
		}
	}
	return false
}
