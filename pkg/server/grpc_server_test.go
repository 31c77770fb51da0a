package server

import (
	"context"
	"testing"

	"git.canoozie.net/riddling/tinkerbind/pkg/graph"
	"git.canoozie.net/riddling/tinkerbind/pkg/native/nativetest"
	pb "git.canoozie.net/riddling/tinkerbind/pkg/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// newTestServer builds a server over an in-memory native table
func newTestServer(t *testing.T) (*GraphServer, *nativetest.API) {
	t.Helper()
	api := nativetest.New()
	g, err := graph.Open(graph.WithAPI(api))
	if err != nil {
		t.Fatalf("Failed to open graph: %v", err)
	}
	t.Cleanup(g.Close)
	return NewGraphServer(g, nil), api
}

// expectCode asserts err carries the given gRPC status code
func expectCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("Expected a gRPC status error, got %T: %v", err, err)
	}
	if st.Code() != code {
		t.Fatalf("Expected code %s, got %s: %s", code, st.Code(), st.Message())
	}
}

func TestServerAddVertex(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	reply, err := s.AddVertex(ctx, &pb.AddVertexRequest{
		Label:      "person",
		Id:         "alice",
		Properties: map[string]string{"name": "Alice"},
	})
	if err != nil {
		t.Fatalf("Failed to add vertex: %v", err)
	}
	if reply.Vertex.Id != "alice" || reply.Vertex.Label != "person" {
		t.Errorf("Unexpected vertex reply: %v", reply.Vertex)
	}
	if reply.Vertex.Properties["name"] != "Alice" {
		t.Errorf("Expected property name=Alice, got %v", reply.Vertex.Properties)
	}
}

func TestServerAddEdge(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})
	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "bob"})

	reply, err := s.AddEdge(ctx, &pb.AddEdgeRequest{Label: "knows", OutId: "alice", InId: "bob"})
	if err != nil {
		t.Fatalf("Failed to add edge: %v", err)
	}
	if reply.Edge.Id != "alice-knows->bob" {
		t.Errorf("Expected the derived edge id, got %q", reply.Edge.Id)
	}
	if reply.Edge.OutId != "alice" || reply.Edge.InId != "bob" {
		t.Errorf("Unexpected endpoints: %v", reply.Edge)
	}
}

func TestServerAddEdgeUnknownEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})

	_, err := s.AddEdge(ctx, &pb.AddEdgeRequest{Label: "knows", OutId: "alice", InId: "ghost"})
	expectCode(t, err, codes.NotFound)
}

func TestServerAddEdgeEmptyLabel(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})
	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "bob"})

	_, err := s.AddEdge(ctx, &pb.AddEdgeRequest{OutId: "alice", InId: "bob"})
	expectCode(t, err, codes.InvalidArgument)
}

func TestServerGetVertex(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})

	reply, err := s.GetVertex(ctx, &pb.VertexRef{Id: "alice"})
	if err != nil {
		t.Fatalf("Failed to get vertex: %v", err)
	}
	if reply.Vertex.Id != "alice" {
		t.Errorf("Expected alice, got %q", reply.Vertex.Id)
	}

	_, err = s.GetVertex(ctx, &pb.VertexRef{Id: "ghost"})
	expectCode(t, err, codes.NotFound)
}

func TestServerRemoveVertex(t *testing.T) {
	s, api := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})
	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "bob"})
	s.AddEdge(ctx, &pb.AddEdgeRequest{Label: "knows", OutId: "alice", InId: "bob"})

	reply, err := s.RemoveVertex(ctx, &pb.VertexRef{Id: "alice"})
	if err != nil {
		t.Fatalf("Failed to remove vertex: %v", err)
	}
	if !reply.Removed {
		t.Error("Expected removal to be reported")
	}
	// The incident edge goes with the vertex
	if api.LiveEdges() != 0 {
		t.Errorf("Expected 0 live edges after cascade, got %d", api.LiveEdges())
	}

	// Unknown ids are not an error
	reply, err = s.RemoveVertex(ctx, &pb.VertexRef{Id: "alice"})
	if err != nil {
		t.Fatalf("Failed on repeated removal: %v", err)
	}
	if reply.Removed {
		t.Error("Expected repeated removal to report nothing removed")
	}
}

func TestServerRemoveEdge(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})
	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "bob"})
	edge, _ := s.AddEdge(ctx, &pb.AddEdgeRequest{Label: "knows", OutId: "alice", InId: "bob"})

	reply, err := s.RemoveEdge(ctx, &pb.EdgeRef{Id: edge.Edge.Id})
	if err != nil {
		t.Fatalf("Failed to remove edge: %v", err)
	}
	if !reply.Removed {
		t.Error("Expected removal to be reported")
	}

	reply, err = s.RemoveEdge(ctx, &pb.EdgeRef{Id: edge.Edge.Id})
	if err != nil {
		t.Fatalf("Failed on repeated removal: %v", err)
	}
	if reply.Removed {
		t.Error("Expected repeated removal to report nothing removed")
	}
}

func TestServerVerticesFilter(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice", Properties: map[string]string{"city": "Oslo"}})
	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "bob", Properties: map[string]string{"city": "Bergen"}})

	reply, err := s.Vertices(ctx, &pb.FilterRequest{Filters: map[string]string{"city": "Oslo"}})
	if err != nil {
		t.Fatalf("Failed to list vertices: %v", err)
	}
	if len(reply.Vertices) != 1 || reply.Vertices[0].Id != "alice" {
		t.Errorf("Expected only alice to match, got %d vertices", len(reply.Vertices))
	}

	reply, err = s.Vertices(ctx, &pb.FilterRequest{})
	if err != nil {
		t.Fatalf("Failed to list vertices: %v", err)
	}
	if len(reply.Vertices) != 2 {
		t.Errorf("Expected 2 vertices without filters, got %d", len(reply.Vertices))
	}
}

func TestServerEdgesFilter(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})
	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "bob"})
	s.AddEdge(ctx, &pb.AddEdgeRequest{Label: "knows", OutId: "alice", InId: "bob", Properties: map[string]string{"since": "2018"}})
	s.AddEdge(ctx, &pb.AddEdgeRequest{Label: "knows", OutId: "bob", InId: "alice", Properties: map[string]string{"since": "2020"}})

	reply, err := s.Edges(ctx, &pb.FilterRequest{Filters: map[string]string{"since": "2018"}})
	if err != nil {
		t.Fatalf("Failed to list edges: %v", err)
	}
	if len(reply.Edges) != 1 || reply.Edges[0].OutId != "alice" {
		t.Errorf("Expected only the 2018 edge, got %d edges", len(reply.Edges))
	}
}

func TestServerCountsAndClear(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})
	s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "bob"})
	s.AddEdge(ctx, &pb.AddEdgeRequest{Label: "knows", OutId: "alice", InId: "bob"})

	counts, err := s.Counts(ctx, &pb.CountsRequest{})
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if counts.Vertices != 2 || counts.Edges != 1 {
		t.Errorf("Expected 2 vertices and 1 edge, got %d and %d", counts.Vertices, counts.Edges)
	}

	if _, err := s.Clear(ctx, &pb.ClearRequest{}); err != nil {
		t.Fatalf("Failed to clear: %v", err)
	}

	counts, err = s.Counts(ctx, &pb.CountsRequest{})
	if err != nil {
		t.Fatalf("Failed to count after clear: %v", err)
	}
	if counts.Vertices != 0 || counts.Edges != 0 {
		t.Errorf("Expected an empty graph after clear, got %d and %d", counts.Vertices, counts.Edges)
	}
}

func TestServerClosedGraph(t *testing.T) {
	api := nativetest.New()
	g, err := graph.Open(graph.WithAPI(api))
	if err != nil {
		t.Fatalf("Failed to open graph: %v", err)
	}
	s := NewGraphServer(g, nil)
	g.Close()

	ctx := context.Background()
	_, err = s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})
	expectCode(t, err, codes.FailedPrecondition)

	_, err = s.Counts(ctx, &pb.CountsRequest{})
	expectCode(t, err, codes.FailedPrecondition)
}

func TestServerNativeFailure(t *testing.T) {
	s, api := newTestServer(t)
	ctx := context.Background()

	api.FailWith("add_vertex", "storage full")
	_, err := s.AddVertex(ctx, &pb.AddVertexRequest{Label: "person", Id: "alice"})
	expectCode(t, err, codes.Internal)
}
