// Package nativetest provides an in-memory stand-in for the native function
// table so that graph and server tests run without the shared library. It
// mirrors the native contract at the API boundary: opaque handles, cascade-free
// bookkeeping (cascades are the host's job), and per-operation failure
// injection for exercising error paths.
package nativetest

import (
	"fmt"
	"sync"

	"git.canoozie.net/riddling/tinkerbind/pkg/native"
)

type graphState struct {
	vertices map[native.Handle]struct{}
	edges    map[native.Handle]struct{}
}

type vertexState struct {
	graph native.Handle
	id    string
}

type edgeState struct {
	graph native.Handle
	label string
}

var _ native.API = (*API)(nil)

// API is an in-memory implementation of native.API
type API struct {
	mu       sync.Mutex
	next     uintptr
	graphs   map[native.Handle]*graphState
	vertices map[native.Handle]*vertexState
	edges    map[native.Handle]*edgeState
	failing  map[string]string
	lastErr  string
	autoSeq  int
}

// New creates an empty in-memory native table
func New() *API {
	return &API{
		graphs:   make(map[native.Handle]*graphState),
		vertices: make(map[native.Handle]*vertexState),
		edges:    make(map[native.Handle]*edgeState),
		failing:  make(map[string]string),
	}
}

// FailWith makes the next call of the named operation fail with the given
// native error message. Operation names follow the native entry points:
// create_graph, add_vertex, add_edge, vertex_id.
func (a *API) FailWith(op, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failing[op] = message
}

func (a *API) takeFailure(op string) (string, bool) {
	message, ok := a.failing[op]
	if ok {
		delete(a.failing, op)
		a.lastErr = message
	}
	return message, ok
}

func (a *API) allocate() native.Handle {
	a.next++
	return native.Handle(a.next)
}

// LiveVertices returns how many vertex handles have not been destroyed yet
func (a *API) LiveVertices() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.vertices)
}

// LiveEdges returns how many edge handles have not been destroyed yet
func (a *API) LiveEdges() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.edges)
}

// LiveGraphs returns how many graph handles have not been destroyed yet
func (a *API) LiveGraphs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.graphs)
}

// CreateGraph creates an in-memory graph instance
func (a *API) CreateGraph() (native.Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if message, ok := a.takeFailure("create_graph"); ok {
		return 0, &native.ErrNativeOperation{Op: "create_graph", Detail: "native graph creation returned null", LastError: message}
	}
	h := a.allocate()
	a.graphs[h] = &graphState{
		vertices: make(map[native.Handle]struct{}),
		edges:    make(map[native.Handle]struct{}),
	}
	return h, nil
}

// DestroyGraph releases a graph instance and everything still registered in it
func (a *API) DestroyGraph(graph native.Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.graphs[graph]
	if !ok {
		return
	}
	for v := range state.vertices {
		delete(a.vertices, v)
	}
	for e := range state.edges {
		delete(a.edges, e)
	}
	delete(a.graphs, graph)
}

// AddVertex adds a vertex, assigning an id when none is supplied
func (a *API) AddVertex(graph native.Handle, id string) (native.Handle, error) {
	return a.AddVertexWithProperties(graph, id, nil)
}

// AddVertexWithProperties adds a vertex with an initial property batch. The
// properties are accepted and dropped: the in-memory table has no reason to
// retain them, reads go through the host overlay.
func (a *API) AddVertexWithProperties(graph native.Handle, id string, properties map[string]string) (native.Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if message, ok := a.takeFailure("add_vertex"); ok {
		return 0, &native.ErrNativeOperation{Op: "add_vertex", Detail: "failed to add vertex", LastError: message}
	}
	state, ok := a.graphs[graph]
	if !ok {
		a.lastErr = "unknown graph handle"
		return 0, &native.ErrNativeOperation{Op: "add_vertex", Detail: "unknown graph handle"}
	}
	if id == "" {
		id = fmt.Sprintf("v%d", a.autoSeq)
		a.autoSeq++
	}
	h := a.allocate()
	a.vertices[h] = &vertexState{graph: graph, id: id}
	state.vertices[h] = struct{}{}
	return h, nil
}

// AddEdge adds an edge between two vertex handles
func (a *API) AddEdge(graph native.Handle, label string, out, in native.Handle) (native.Handle, error) {
	return a.AddEdgeWithProperties(graph, label, out, in, nil)
}

// AddEdgeWithProperties adds an edge with an initial property batch
func (a *API) AddEdgeWithProperties(graph native.Handle, label string, out, in native.Handle, properties map[string]string) (native.Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if message, ok := a.takeFailure("add_edge"); ok {
		return 0, &native.ErrNativeOperation{Op: "add_edge", Detail: "failed to add edge", LastError: message}
	}
	state, ok := a.graphs[graph]
	if !ok {
		a.lastErr = "unknown graph handle"
		return 0, &native.ErrNativeOperation{Op: "add_edge", Detail: "unknown graph handle"}
	}
	if _, ok := a.vertices[out]; !ok {
		a.lastErr = "unknown out vertex handle"
		return 0, &native.ErrNativeOperation{Op: "add_edge", Detail: "unknown out vertex handle"}
	}
	if _, ok := a.vertices[in]; !ok {
		a.lastErr = "unknown in vertex handle"
		return 0, &native.ErrNativeOperation{Op: "add_edge", Detail: "unknown in vertex handle"}
	}
	h := a.allocate()
	a.edges[h] = &edgeState{graph: graph, label: label}
	state.edges[h] = struct{}{}
	return h, nil
}

// VertexCount returns the number of live vertices in the graph
func (a *API) VertexCount(graph native.Handle) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.graphs[graph]
	if !ok {
		return 0, &native.ErrNativeOperation{Op: "vertex_count", Detail: "unknown graph handle"}
	}
	return int64(len(state.vertices)), nil
}

// EdgeCount returns the number of live edges in the graph
func (a *API) EdgeCount(graph native.Handle) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.graphs[graph]
	if !ok {
		return 0, &native.ErrNativeOperation{Op: "edge_count", Detail: "unknown graph handle"}
	}
	return int64(len(state.edges)), nil
}

// VertexID returns the id the table assigned to a vertex
func (a *API) VertexID(vertex native.Handle) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if message, ok := a.takeFailure("vertex_id"); ok {
		return "", &native.ErrNativeOperation{Op: "vertex_id", Detail: "native string retrieval failed", LastError: message}
	}
	state, ok := a.vertices[vertex]
	if !ok {
		return "", &native.ErrNativeOperation{Op: "vertex_id", Detail: "unknown vertex handle"}
	}
	return state.id, nil
}

// EdgeLabel returns the label of an edge
func (a *API) EdgeLabel(edge native.Handle) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.edges[edge]
	if !ok {
		return "", &native.ErrNativeOperation{Op: "edge_label", Detail: "unknown edge handle"}
	}
	return state.label, nil
}

// DestroyVertex releases a vertex handle
func (a *API) DestroyVertex(vertex native.Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.vertices[vertex]
	if !ok {
		return
	}
	if graph, ok := a.graphs[state.graph]; ok {
		delete(graph.vertices, vertex)
	}
	delete(a.vertices, vertex)
}

// DestroyEdge releases an edge handle
func (a *API) DestroyEdge(edge native.Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.edges[edge]
	if !ok {
		return
	}
	if graph, ok := a.graphs[state.graph]; ok {
		delete(graph.edges, edge)
	}
	delete(a.edges, edge)
}

// LastError returns the most recent native error message
func (a *API) LastError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}
