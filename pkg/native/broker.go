package native

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// initial buffer size for string-returning native calls; the error buffer is
// larger because native error text tends to be longer than ids and labels
const (
	stringBufferSize = 256
	errorBufferSize  = 512
)

// funcs holds the bound native function table. All strings cross the
// boundary as NUL-terminated byte sequences; optional strings and parallel
// key/value arrays are passed as raw pointers so that NULL stays expressible.
type funcs struct {
	createGraph   func() uintptr
	destroyGraph  func(graph uintptr)
	addVertex     func(graph uintptr, id unsafe.Pointer) uintptr
	addVertexWith func(graph uintptr, id unsafe.Pointer, keys, values unsafe.Pointer, count int32) uintptr
	addEdge       func(graph uintptr, label string, out, in uintptr) uintptr
	addEdgeWith   func(graph uintptr, label string, out, in uintptr, keys, values unsafe.Pointer, count int32) uintptr
	vertexCount   func(graph uintptr) int64
	edgeCount     func(graph uintptr) int64
	vertexID      func(vertex uintptr, buf unsafe.Pointer, size int32) int32
	edgeLabel     func(edge uintptr, buf unsafe.Pointer, size int32) int32
	destroyVertex func(vertex uintptr)
	destroyEdge   func(edge uintptr)
	lastError     func(buf unsafe.Pointer, size int32) int32
}

// Broker binds the native function table once and exposes one typed
// operation per entry point. A Broker is immutable after Open returns and is
// safe to share; the graph instances it serves are not.
type Broker struct {
	path string
	fns  funcs
}

var (
	defaultOnce   sync.Once
	defaultBroker *Broker
	defaultErr    error
)

// Default returns the process-wide broker, resolving and binding the native
// library on first use. Initialization happens exactly once; every later
// call observes the same broker (or the same failure). There is no teardown
// and no rebinding.
func Default() (*Broker, error) {
	defaultOnce.Do(func() {
		defaultBroker, defaultErr = Open("")
	})
	return defaultBroker, defaultErr
}

// Open loads and binds the native library at path. An empty path runs the
// candidate search (see Locate). Callers that want explicit dependency
// injection instead of the Default singleton use this directly.
func Open(path string) (*Broker, error) {
	if path == "" {
		located, err := Locate()
		if err != nil {
			return nil, err
		}
		path = located
	}
	lib, err := openLibrary(path)
	if err != nil {
		return nil, &ErrLibraryLoadFailed{Path: path, Cause: err}
	}
	b := &Broker{path: path}
	if err := b.bind(lib); err != nil {
		return nil, err
	}
	return b, nil
}

// Path returns the filesystem path the library was loaded from
func (b *Broker) Path() string {
	return b.path
}

// bind registers every required entry point. A missing symbol fails the
// whole bind; there is no partial table.
func (b *Broker) bind(lib uintptr) error {
	register := func(fptr interface{}, name string) error {
		addr, err := loadSymbol(lib, name)
		if err != nil || addr == 0 {
			return &ErrLibraryLoadFailed{Path: b.path, Symbol: name, Cause: err}
		}
		purego.RegisterFunc(fptr, addr)
		return nil
	}

	bindings := []struct {
		fptr interface{}
		name string
	}{
		{&b.fns.createGraph, "tinkergraph_create"},
		{&b.fns.destroyGraph, "tinkergraph_destroy"},
		{&b.fns.addVertex, "tinkergraph_add_vertex"},
		{&b.fns.addVertexWith, "tinkergraph_add_vertex_with_properties"},
		{&b.fns.addEdge, "tinkergraph_add_edge"},
		{&b.fns.addEdgeWith, "tinkergraph_add_edge_with_properties"},
		{&b.fns.vertexCount, "tinkergraph_vertex_count"},
		{&b.fns.edgeCount, "tinkergraph_edge_count"},
		{&b.fns.vertexID, "tinkergraph_vertex_id"},
		{&b.fns.edgeLabel, "tinkergraph_edge_label"},
		{&b.fns.destroyVertex, "tinkergraph_destroy_vertex"},
		{&b.fns.destroyEdge, "tinkergraph_destroy_edge"},
		{&b.fns.lastError, "tinkergraph_get_error_message"},
	}
	for _, binding := range bindings {
		if err := register(binding.fptr, binding.name); err != nil {
			return err
		}
	}
	return nil
}

// CreateGraph creates a native graph instance
func (b *Broker) CreateGraph() (Handle, error) {
	h := b.fns.createGraph()
	if h == 0 {
		return 0, b.opError("create_graph", "native graph creation returned null")
	}
	return Handle(h), nil
}

// DestroyGraph destroys a native graph instance
func (b *Broker) DestroyGraph(graph Handle) {
	if graph != 0 {
		b.fns.destroyGraph(uintptr(graph))
	}
}

// AddVertex adds a vertex to the graph. An empty id lets the native side
// assign one.
func (b *Broker) AddVertex(graph Handle, id string) (Handle, error) {
	idPtr, idPin := optionalCString(id)
	h := b.fns.addVertex(uintptr(graph), idPtr)
	runtime.KeepAlive(idPin)
	if h == 0 {
		return 0, b.opError("add_vertex", fmt.Sprintf("failed to add vertex with id %q", id))
	}
	return Handle(h), nil
}

// AddVertexWithProperties adds a vertex along with an initial property batch,
// passed as parallel key/value arrays
func (b *Broker) AddVertexWithProperties(graph Handle, id string, properties map[string]string) (Handle, error) {
	idPtr, idPin := optionalCString(id)
	arrays := cStringArrays(properties)
	h := b.fns.addVertexWith(uintptr(graph), idPtr, arrays.keys(), arrays.values(), arrays.count())
	runtime.KeepAlive(idPin)
	runtime.KeepAlive(arrays)
	if h == 0 {
		return 0, b.opError("add_vertex_with_properties",
			fmt.Sprintf("failed to add vertex with id %q and %d properties", id, len(properties)))
	}
	return Handle(h), nil
}

// AddEdge adds an edge between two native vertices
func (b *Broker) AddEdge(graph Handle, label string, out, in Handle) (Handle, error) {
	h := b.fns.addEdge(uintptr(graph), label, uintptr(out), uintptr(in))
	if h == 0 {
		return 0, b.opError("add_edge", fmt.Sprintf("failed to add edge with label %q", label))
	}
	return Handle(h), nil
}

// AddEdgeWithProperties adds an edge along with an initial property batch
func (b *Broker) AddEdgeWithProperties(graph Handle, label string, out, in Handle, properties map[string]string) (Handle, error) {
	arrays := cStringArrays(properties)
	h := b.fns.addEdgeWith(uintptr(graph), label, uintptr(out), uintptr(in), arrays.keys(), arrays.values(), arrays.count())
	runtime.KeepAlive(arrays)
	if h == 0 {
		return 0, b.opError("add_edge_with_properties",
			fmt.Sprintf("failed to add edge with label %q and %d properties", label, len(properties)))
	}
	return Handle(h), nil
}

// VertexCount returns the authoritative vertex count of the native graph
func (b *Broker) VertexCount(graph Handle) (int64, error) {
	n := b.fns.vertexCount(uintptr(graph))
	if n < 0 {
		return 0, b.opError("vertex_count", "native count returned negative")
	}
	return n, nil
}

// EdgeCount returns the authoritative edge count of the native graph
func (b *Broker) EdgeCount(graph Handle) (int64, error) {
	n := b.fns.edgeCount(uintptr(graph))
	if n < 0 {
		return 0, b.opError("edge_count", "native count returned negative")
	}
	return n, nil
}

// VertexID retrieves the id the native side assigned to a vertex
func (b *Broker) VertexID(vertex Handle) (string, error) {
	return b.readString("vertex_id", func(buf unsafe.Pointer, size int32) int32 {
		return b.fns.vertexID(uintptr(vertex), buf, size)
	})
}

// EdgeLabel retrieves the label of a native edge
func (b *Broker) EdgeLabel(edge Handle) (string, error) {
	return b.readString("edge_label", func(buf unsafe.Pointer, size int32) int32 {
		return b.fns.edgeLabel(uintptr(edge), buf, size)
	})
}

// DestroyVertex releases a native vertex handle
func (b *Broker) DestroyVertex(vertex Handle) {
	if vertex != 0 {
		b.fns.destroyVertex(uintptr(vertex))
	}
}

// DestroyEdge releases a native edge handle
func (b *Broker) DestroyEdge(edge Handle) {
	if edge != 0 {
		b.fns.destroyEdge(uintptr(edge))
	}
}

// LastError retrieves the native side's last error message. It never fails;
// retrieval problems yield an empty string.
func (b *Broker) LastError() string {
	buf := make([]byte, errorBufferSize)
	n := b.fns.lastError(unsafe.Pointer(&buf[0]), int32(len(buf)))
	if n <= 0 || int(n) > len(buf) {
		return ""
	}
	return cTruncate(buf[:n])
}

// opError builds the typed failure for a native sentinel, attaching the
// native last-error text when available
func (b *Broker) opError(op, detail string) error {
	return &ErrNativeOperation{Op: op, Detail: detail, LastError: b.LastError()}
}

// readString runs a fixed-buffer native string retrieval. The native side
// writes up to size bytes and returns the actual length, or a negative value
// on failure. A returned length at or beyond the buffer size means the
// buffer was too small: the call is retried once with the reported length,
// then fails rather than looping.
func (b *Broker) readString(op string, call func(buf unsafe.Pointer, size int32) int32) (string, error) {
	size := int32(stringBufferSize)
	for attempt := 0; attempt < 2; attempt++ {
		buf := make([]byte, size)
		n := call(unsafe.Pointer(&buf[0]), size)
		if n < 0 {
			return "", b.opError(op, "native string retrieval failed")
		}
		if n < size {
			return cTruncate(buf[:n]), nil
		}
		size = n + 1
	}
	return "", &ErrBufferTooSmall{Op: op, Size: int(size - 1), Needed: int(size)}
}

// cTruncate interprets buf as NUL-terminated text
func cTruncate(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

// optionalCString returns a NUL-terminated copy of s, or NULL for empty s.
// The returned pin must be kept alive across the native call.
func optionalCString(s string) (unsafe.Pointer, []byte) {
	if s == "" {
		return nil, nil
	}
	pin := append([]byte(s), 0)
	return unsafe.Pointer(&pin[0]), pin
}

// propertyArrays holds a property map converted to the parallel key/value
// array convention of the native contract. It must be kept alive across the
// native call; the native side only reads during the call.
type propertyArrays struct {
	keyPtrs   []unsafe.Pointer
	valuePtrs []unsafe.Pointer
	pins      [][]byte
}

func (a *propertyArrays) keys() unsafe.Pointer {
	if len(a.keyPtrs) == 0 {
		return nil
	}
	return unsafe.Pointer(&a.keyPtrs[0])
}

func (a *propertyArrays) values() unsafe.Pointer {
	if len(a.valuePtrs) == 0 {
		return nil
	}
	return unsafe.Pointer(&a.valuePtrs[0])
}

func (a *propertyArrays) count() int32 {
	return int32(len(a.keyPtrs))
}

// cStringArrays converts a property map into NUL-terminated parallel arrays
func cStringArrays(properties map[string]string) *propertyArrays {
	arrays := &propertyArrays{}
	for k, v := range properties {
		keyPin := append([]byte(k), 0)
		valuePin := append([]byte(v), 0)
		arrays.pins = append(arrays.pins, keyPin, valuePin)
		arrays.keyPtrs = append(arrays.keyPtrs, unsafe.Pointer(&keyPin[0]))
		arrays.valuePtrs = append(arrays.valuePtrs, unsafe.Pointer(&valuePin[0]))
	}
	return arrays
}
