// Package native loads the prebuilt TinkerGraph shared library and exposes
// one strongly typed operation per exported entry point. Native failure
// sentinels (null handles, negative lengths) are converted into typed errors
// here and never leak past this package. The library is resolved and bound at
// most once per process.
package native

// Handle is an opaque address-sized token identifying a graph, vertex or
// edge inside the native domain. It is never dereferenced on the host side;
// it is only passed back into native calls. The native domain owns the
// underlying object, the host owns the obligation to destroy it exactly once.
type Handle uintptr

// API is the operation surface the graph layer consumes. The production
// implementation is Broker; tests substitute an in-memory implementation.
type API interface {
	CreateGraph() (Handle, error)
	DestroyGraph(graph Handle)
	AddVertex(graph Handle, id string) (Handle, error)
	AddVertexWithProperties(graph Handle, id string, properties map[string]string) (Handle, error)
	AddEdge(graph Handle, label string, out, in Handle) (Handle, error)
	AddEdgeWithProperties(graph Handle, label string, out, in Handle, properties map[string]string) (Handle, error)
	VertexCount(graph Handle) (int64, error)
	EdgeCount(graph Handle) (int64, error)
	VertexID(vertex Handle) (string, error)
	EdgeLabel(edge Handle) (string, error)
	DestroyVertex(vertex Handle)
	DestroyEdge(edge Handle)
	LastError() string
}
