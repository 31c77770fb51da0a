// Package graph is the host-side mirror of a native TinkerGraph instance.
// A Graph owns one native graph handle and the registries mapping native
// handles to Vertex and Edge wrappers. Structure (which elements exist, how
// they connect) lives in the native domain; identity and properties are
// mirrored here, and property mutation after creation stays host-side only.
//
// A Graph is single-owner and not safe for concurrent use. Callers that need
// concurrency serialize externally, the way pkg/server does.
package graph

import (
	"fmt"
	"runtime"
	"strconv"
	"weak"

	"git.canoozie.net/riddling/tinkerbind/pkg/model"
	"git.canoozie.net/riddling/tinkerbind/pkg/native"
)

// DefaultVertexLabel is assigned to vertices created without a label
const DefaultVertexLabel = "vertex"

// Graph owns the lifetime of one native graph instance. Once Close has been
// called every mutating or query operation fails with ErrGraphClosed.
type Graph struct {
	api      native.API
	handle   native.Handle
	vertices map[native.Handle]*Vertex
	edges    map[native.Handle]*Edge
	idSeq    uint64
	closed   bool
	logger   model.Logger
}

type config struct {
	api    native.API
	logger model.Logger
}

// Option configures a Graph at Open time
type Option func(*config)

// WithAPI supplies the native function table explicitly instead of the
// process-wide broker. Tests use this with an in-memory table.
func WithAPI(api native.API) Option {
	return func(c *config) {
		c.api = api
	}
}

// WithLogger supplies the logger used for graph lifecycle events
func WithLogger(logger model.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Open acquires a native graph handle and returns its host-side owner.
// Library resolution errors from the default broker are returned unchanged;
// a null handle from the native side becomes ErrGraphCreateFailed.
func Open(opts ...Option) (*Graph, error) {
	cfg := config{logger: model.NewNoOpLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.api == nil {
		broker, err := native.Default()
		if err != nil {
			return nil, err
		}
		cfg.api = broker
	}

	handle, err := cfg.api.CreateGraph()
	if err != nil {
		return nil, &ErrGraphCreateFailed{Cause: err}
	}

	g := &Graph{
		api:      cfg.api,
		handle:   handle,
		vertices: make(map[native.Handle]*Vertex),
		edges:    make(map[native.Handle]*Edge),
		logger:   cfg.logger,
	}
	// Backstop for callers that drop the graph without closing it. The
	// destroy obligation must be met exactly once even then.
	runtime.SetFinalizer(g, (*Graph).Close)
	g.logger.Debug("opened graph %v", handle)
	return g, nil
}

// Close destroys every registered vertex and edge wrapper, empties the
// registries, releases the native graph handle and moves the graph to its
// terminal closed state. Closing twice is a no-op; Close never fails.
func (g *Graph) Close() {
	if g.closed {
		return
	}
	for _, e := range g.edges {
		e.cleanup()
	}
	for _, v := range g.vertices {
		v.cleanup()
	}
	g.vertices = make(map[native.Handle]*Vertex)
	g.edges = make(map[native.Handle]*Edge)
	g.closed = true
	g.api.DestroyGraph(g.handle)
	g.handle = 0
	runtime.SetFinalizer(g, nil)
	g.logger.Debug("closed graph")
}

// Closed reports whether Close has been called
func (g *Graph) Closed() bool {
	return g.closed
}

// AddVertex adds a vertex with an optional label ("" means the default
// "vertex" label) and initial properties. The initial properties cross the
// native boundary; later mutation through the wrapper does not.
func (g *Graph) AddVertex(label string, properties model.Properties) (*Vertex, error) {
	return g.AddVertexWithID(label, "", properties)
}

// AddVertexWithID adds a vertex with an explicit id. An empty id lets the
// native side assign one, falling back to an internal counter when the
// assigned id cannot be recovered.
func (g *Graph) AddVertexWithID(label, id string, properties model.Properties) (*Vertex, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	if label == "" {
		label = DefaultVertexLabel
	}

	nativeProps := properties.Native()
	if label != DefaultVertexLabel {
		if nativeProps == nil {
			nativeProps = make(map[string]string, 1)
		}
		nativeProps["label"] = label
	}

	var handle native.Handle
	var err error
	if len(nativeProps) > 0 {
		handle, err = g.api.AddVertexWithProperties(g.handle, id, nativeProps)
	} else {
		handle, err = g.api.AddVertex(g.handle, id)
	}
	if err != nil {
		return nil, &ErrVertexCreateFailed{ID: id, Label: label, Cause: err}
	}

	if id == "" {
		recovered, idErr := g.api.VertexID(handle)
		if idErr == nil && recovered != "" {
			id = recovered
		} else {
			id = strconv.FormatUint(g.idSeq, 10)
			g.idSeq++
		}
	}

	v := &Vertex{
		graph:  weak.Make(g),
		handle: handle,
		id:     id,
		label:  label,
		props:  properties.Clone(),
	}
	g.vertices[handle] = v
	g.logger.Debug("added vertex %s (%s)", id, label)
	return v, nil
}

// AddEdge adds an edge between two vertices of this graph. The label must be
// non-empty, both endpoints must be vertices created by this graph, and the
// same vertex on both ends is allowed (a self-loop).
func (g *Graph) AddEdge(label string, out, in *Vertex, properties model.Properties) (*Edge, error) {
	return g.AddEdgeWithID(label, "", out, in, properties)
}

// AddEdgeWithID adds an edge with an explicit id. An empty id defaults to
// "{out.id}-{label}->{in.id}".
func (g *Graph) AddEdgeWithID(label, id string, out, in *Vertex, properties model.Properties) (*Edge, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	if label == "" {
		return nil, &ErrValidation{Param: "label", Reason: "expected a non-empty string"}
	}
	if out == nil {
		return nil, &ErrValidation{Param: "out", Reason: "expected a vertex, got nil"}
	}
	if in == nil {
		return nil, &ErrValidation{Param: "in", Reason: "expected a vertex, got nil"}
	}
	if out.owner() != g {
		return nil, &ErrValidation{Param: "out", Reason: "vertex belongs to a different graph"}
	}
	if in.owner() != g {
		return nil, &ErrValidation{Param: "in", Reason: "vertex belongs to a different graph"}
	}

	var handle native.Handle
	var err error
	nativeProps := properties.Native()
	if len(nativeProps) > 0 {
		handle, err = g.api.AddEdgeWithProperties(g.handle, label, out.handle, in.handle, nativeProps)
	} else {
		handle, err = g.api.AddEdge(g.handle, label, out.handle, in.handle)
	}
	if err != nil {
		return nil, &ErrEdgeCreateFailed{ID: id, Label: label, Out: out.id, In: in.id, Cause: err}
	}

	if id == "" {
		id = fmt.Sprintf("%s-%s->%s", out.id, label, in.id)
	}

	e := &Edge{
		graph:  weak.Make(g),
		handle: handle,
		id:     id,
		label:  label,
		out:    out,
		in:     in,
		props:  properties.Clone(),
	}
	g.edges[handle] = e
	g.logger.Debug("added edge %s", id)
	return e, nil
}

// VertexCount returns the native side's vertex count. The native count is
// the source of truth, not the host registry size.
func (g *Graph) VertexCount() (int64, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	return g.api.VertexCount(g.handle)
}

// EdgeCount returns the native side's edge count
func (g *Graph) EdgeCount() (int64, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	return g.api.EdgeCount(g.handle)
}

// Vertices returns all registered vertices whose property overlay matches
// every filter key by exact equality. Nil or empty filters return all
// vertices. Order is unspecified.
func (g *Graph) Vertices(filters model.Properties) ([]*Vertex, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		if v.props.Matches(filters) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Edges returns all registered edges whose property overlay matches every
// filter key by exact equality
func (g *Graph) Edges(filters model.Properties) ([]*Edge, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.props.Matches(filters) {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetVertex returns the registered vertex with the given id, or nil when no
// such vertex exists. Absence is not an error.
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	for _, v := range g.vertices {
		if v.id == id {
			return v, nil
		}
	}
	return nil, nil
}

// GetEdge returns the registered edge with the given id, or nil when no such
// edge exists
func (g *Graph) GetEdge(id string) (*Edge, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	for _, e := range g.edges {
		if e.id == id {
			return e, nil
		}
	}
	return nil, nil
}

// RemoveVertex removes a vertex and, first, every edge touching it. Removing
// a vertex that is not registered is a no-op.
func (g *Graph) RemoveVertex(v *Vertex) error {
	if g.closed {
		return ErrGraphClosed
	}
	if v == nil || g.vertices[v.handle] != v {
		return nil
	}

	var incident []*Edge
	for _, e := range g.edges {
		if e.out == v || e.in == v {
			incident = append(incident, e)
		}
	}
	for _, e := range incident {
		e.cleanup()
		delete(g.edges, e.handle)
	}

	v.cleanup()
	delete(g.vertices, v.handle)
	g.logger.Debug("removed vertex %s and %d incident edges", v.id, len(incident))
	return nil
}

// RemoveEdge removes an edge. Removing an edge that is not registered is a
// no-op.
func (g *Graph) RemoveEdge(e *Edge) error {
	if g.closed {
		return ErrGraphClosed
	}
	if e == nil || g.edges[e.handle] != e {
		return nil
	}
	e.cleanup()
	delete(g.edges, e.handle)
	return nil
}

// Clear removes all edges, then all vertices, through the same cleanup path
// as individual removal
func (g *Graph) Clear() error {
	if g.closed {
		return ErrGraphClosed
	}
	for _, e := range g.edges {
		e.cleanup()
	}
	g.edges = make(map[native.Handle]*Edge)
	for _, v := range g.vertices {
		v.cleanup()
	}
	g.vertices = make(map[native.Handle]*Vertex)
	g.logger.Debug("cleared graph")
	return nil
}

// String renders the graph with its registry sizes
func (g *Graph) String() string {
	if g.closed {
		return "Graph(closed)"
	}
	return fmt.Sprintf("Graph(vertices=%d, edges=%d)", len(g.vertices), len(g.edges))
}
