package native

import (
	"errors"
	"testing"
	"unsafe"
)

// writeCString copies s into the native-owned buffer view and returns the
// length the native contract reports: the full length of the string, whether
// or not it fit
func writeCString(buf unsafe.Pointer, size int32, s string) int32 {
	out := unsafe.Slice((*byte)(buf), int(size))
	n := copy(out, s)
	if n < len(out) {
		out[n] = 0
	}
	return int32(len(s))
}

// stubBroker builds a broker whose error channel reports the given message
func stubBroker(lastError string) *Broker {
	return &Broker{
		path: "stub",
		fns: funcs{
			lastError: func(buf unsafe.Pointer, size int32) int32 {
				return writeCString(buf, size, lastError)
			},
		},
	}
}

func TestCreateGraphFailureCarriesLastError(t *testing.T) {
	b := stubBroker("allocation failed")
	b.fns.createGraph = func() uintptr { return 0 }

	_, err := b.CreateGraph()
	if err == nil {
		t.Fatal("Expected an error for a null graph handle")
	}

	var opErr *ErrNativeOperation
	if !errors.As(err, &opErr) {
		t.Fatalf("Expected ErrNativeOperation, got %T: %v", err, err)
	}
	if opErr.Op != "create_graph" {
		t.Errorf("Expected op create_graph, got %s", opErr.Op)
	}
	if opErr.LastError != "allocation failed" {
		t.Errorf("Expected native error text to be carried, got %q", opErr.LastError)
	}
}

func TestCreateGraphSuccess(t *testing.T) {
	b := stubBroker("")
	b.fns.createGraph = func() uintptr { return 42 }

	h, err := b.CreateGraph()
	if err != nil {
		t.Fatalf("Failed to create graph: %v", err)
	}
	if h != Handle(42) {
		t.Errorf("Expected handle 42, got %d", h)
	}
}

func TestVertexIDFitsFirstBuffer(t *testing.T) {
	b := stubBroker("")
	calls := 0
	b.fns.vertexID = func(vertex uintptr, buf unsafe.Pointer, size int32) int32 {
		calls++
		return writeCString(buf, size, "v42")
	}

	id, err := b.VertexID(Handle(1))
	if err != nil {
		t.Fatalf("Failed to read vertex id: %v", err)
	}
	if id != "v42" {
		t.Errorf("Expected id v42, got %q", id)
	}
	if calls != 1 {
		t.Errorf("Expected a single native call, got %d", calls)
	}
}

func TestVertexIDGrowsBufferOnce(t *testing.T) {
	// An id longer than the initial buffer forces a retry with the reported
	// length
	long := make([]byte, stringBufferSize+20)
	for i := range long {
		long[i] = 'a'
	}
	want := string(long)

	b := stubBroker("")
	var sizes []int32
	b.fns.vertexID = func(vertex uintptr, buf unsafe.Pointer, size int32) int32 {
		sizes = append(sizes, size)
		return writeCString(buf, size, want)
	}

	id, err := b.VertexID(Handle(1))
	if err != nil {
		t.Fatalf("Failed to read vertex id: %v", err)
	}
	if id != want {
		t.Errorf("Expected the full id after retry, got %d bytes", len(id))
	}
	if len(sizes) != 2 {
		t.Fatalf("Expected 2 native calls, got %d", len(sizes))
	}
	if sizes[0] != stringBufferSize || sizes[1] != int32(len(want)+1) {
		t.Errorf("Expected buffer sizes %d then %d, got %v", stringBufferSize, len(want)+1, sizes)
	}
}

func TestVertexIDBufferNeverLargeEnough(t *testing.T) {
	// A native side that always reports the handed size as required can never
	// be satisfied; the retry must not loop forever
	b := stubBroker("")
	b.fns.vertexID = func(vertex uintptr, buf unsafe.Pointer, size int32) int32 {
		return size
	}

	_, err := b.VertexID(Handle(1))
	var tooSmall *ErrBufferTooSmall
	if !errors.As(err, &tooSmall) {
		t.Fatalf("Expected ErrBufferTooSmall, got %T: %v", err, err)
	}
	if tooSmall.Op != "vertex_id" {
		t.Errorf("Expected op vertex_id, got %s", tooSmall.Op)
	}
}

func TestVertexIDNegativeReturn(t *testing.T) {
	b := stubBroker("no such vertex")
	b.fns.vertexID = func(vertex uintptr, buf unsafe.Pointer, size int32) int32 {
		return -1
	}

	_, err := b.VertexID(Handle(1))
	var opErr *ErrNativeOperation
	if !errors.As(err, &opErr) {
		t.Fatalf("Expected ErrNativeOperation, got %T: %v", err, err)
	}
	if opErr.LastError != "no such vertex" {
		t.Errorf("Expected native error text to be carried, got %q", opErr.LastError)
	}
}

func TestEdgeLabelRoundTrip(t *testing.T) {
	b := stubBroker("")
	b.fns.edgeLabel = func(edge uintptr, buf unsafe.Pointer, size int32) int32 {
		return writeCString(buf, size, "knows")
	}

	label, err := b.EdgeLabel(Handle(7))
	if err != nil {
		t.Fatalf("Failed to read edge label: %v", err)
	}
	if label != "knows" {
		t.Errorf("Expected label knows, got %q", label)
	}
}

func TestCountsRejectNegative(t *testing.T) {
	b := stubBroker("graph destroyed")
	b.fns.vertexCount = func(graph uintptr) int64 { return -1 }
	b.fns.edgeCount = func(graph uintptr) int64 { return 3 }

	if _, err := b.VertexCount(Handle(1)); err == nil {
		t.Error("Expected an error for a negative vertex count")
	}
	n, err := b.EdgeCount(Handle(1))
	if err != nil {
		t.Fatalf("Failed to read edge count: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected edge count 3, got %d", n)
	}
}

func TestLastErrorEmptyOnFailure(t *testing.T) {
	b := stubBroker("")
	b.fns.lastError = func(buf unsafe.Pointer, size int32) int32 { return -1 }

	if msg := b.LastError(); msg != "" {
		t.Errorf("Expected empty message when retrieval fails, got %q", msg)
	}
}

func TestDestroyIgnoresNullHandles(t *testing.T) {
	// Null handles must not reach the native side at all
	b := stubBroker("")
	b.fns.destroyGraph = func(graph uintptr) { t.Error("destroyGraph called with null handle") }
	b.fns.destroyVertex = func(vertex uintptr) { t.Error("destroyVertex called with null handle") }
	b.fns.destroyEdge = func(edge uintptr) { t.Error("destroyEdge called with null handle") }

	b.DestroyGraph(0)
	b.DestroyVertex(0)
	b.DestroyEdge(0)
}

func TestCTruncate(t *testing.T) {
	if got := cTruncate([]byte("abc\x00def")); got != "abc" {
		t.Errorf("Expected truncation at NUL, got %q", got)
	}
	if got := cTruncate([]byte("abc")); got != "abc" {
		t.Errorf("Expected full string without NUL, got %q", got)
	}
	if got := cTruncate(nil); got != "" {
		t.Errorf("Expected empty string for nil buffer, got %q", got)
	}
}

func TestOptionalCString(t *testing.T) {
	ptr, pin := optionalCString("")
	if ptr != nil || pin != nil {
		t.Error("Expected NULL for the empty string")
	}

	ptr, pin = optionalCString("v1")
	if ptr == nil {
		t.Fatal("Expected a non-NULL pointer")
	}
	if len(pin) != 3 || pin[2] != 0 {
		t.Errorf("Expected NUL-terminated copy, got %v", pin)
	}
}

func TestCStringArrays(t *testing.T) {
	arrays := cStringArrays(map[string]string{"name": "Alice", "age": "30"})
	if arrays.count() != 2 {
		t.Errorf("Expected 2 entries, got %d", arrays.count())
	}
	if arrays.keys() == nil || arrays.values() == nil {
		t.Error("Expected non-NULL key and value arrays")
	}
	for _, pin := range arrays.pins {
		if len(pin) == 0 || pin[len(pin)-1] != 0 {
			t.Errorf("Expected every pinned string to be NUL terminated, got %v", pin)
		}
	}

	empty := cStringArrays(nil)
	if empty.count() != 0 {
		t.Errorf("Expected 0 entries for nil properties, got %d", empty.count())
	}
	if empty.keys() != nil || empty.values() != nil {
		t.Error("Expected NULL arrays for nil properties")
	}
}
