package server

import (
	"context"
	"errors"
	"sync"

	"git.canoozie.net/riddling/tinkerbind/pkg/graph"
	"git.canoozie.net/riddling/tinkerbind/pkg/model"
	pb "git.canoozie.net/riddling/tinkerbind/pkg/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GraphServer exposes one Graph over gRPC. The graph itself is single-owner
// and not thread-safe, so every handler serializes on the server's mutex.
type GraphServer struct {
	pb.UnimplementedGraphServiceServer
	mu     sync.Mutex
	graph  *graph.Graph
	logger model.Logger
}

// NewGraphServer creates a server around an already-open graph
func NewGraphServer(g *graph.Graph, logger model.Logger) *GraphServer {
	if logger == nil {
		logger = model.NewNoOpLogger()
	}
	return &GraphServer{
		graph:  g,
		logger: logger,
	}
}

// RegisterServer registers the graph service with the provided gRPC server
func RegisterServer(grpcServer *grpc.Server, g *graph.Graph, logger model.Logger) {
	pb.RegisterGraphServiceServer(grpcServer, NewGraphServer(g, logger))
}

// AddVertex adds a vertex to the graph
func (s *GraphServer) AddVertex(ctx context.Context, req *pb.AddVertexRequest) (*pb.VertexReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.graph.AddVertexWithID(req.Label, req.Id, propertiesFromWire(req.Properties))
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.VertexReply{Vertex: convertVertex(v)}, nil
}

// AddEdge adds an edge between two vertices addressed by id
func (s *GraphServer) AddEdge(ctx context.Context, req *pb.AddEdgeRequest) (*pb.EdgeReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.graph.GetVertex(req.OutId)
	if err != nil {
		return nil, statusFromError(err)
	}
	if out == nil {
		return nil, status.Errorf(codes.NotFound, "no vertex with id %q", req.OutId)
	}
	in, err := s.graph.GetVertex(req.InId)
	if err != nil {
		return nil, statusFromError(err)
	}
	if in == nil {
		return nil, status.Errorf(codes.NotFound, "no vertex with id %q", req.InId)
	}

	e, err := s.graph.AddEdgeWithID(req.Label, req.Id, out, in, propertiesFromWire(req.Properties))
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.EdgeReply{Edge: convertEdge(e)}, nil
}

// GetVertex returns a vertex by id
func (s *GraphServer) GetVertex(ctx context.Context, req *pb.VertexRef) (*pb.VertexReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.graph.GetVertex(req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}
	if v == nil {
		return nil, status.Errorf(codes.NotFound, "no vertex with id %q", req.Id)
	}
	return &pb.VertexReply{Vertex: convertVertex(v)}, nil
}

// RemoveVertex removes a vertex and its incident edges. Removing an unknown
// id is not an error; the reply reports whether anything was removed.
func (s *GraphServer) RemoveVertex(ctx context.Context, req *pb.VertexRef) (*pb.RemoveReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.graph.GetVertex(req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}
	if v == nil {
		return &pb.RemoveReply{Removed: false}, nil
	}
	if err := s.graph.RemoveVertex(v); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.RemoveReply{Removed: true}, nil
}

// RemoveEdge removes an edge by id
func (s *GraphServer) RemoveEdge(ctx context.Context, req *pb.EdgeRef) (*pb.RemoveReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.graph.GetEdge(req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}
	if e == nil {
		return &pb.RemoveReply{Removed: false}, nil
	}
	if err := s.graph.RemoveEdge(e); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.RemoveReply{Removed: true}, nil
}

// Vertices returns the vertices matching the property filters
func (s *GraphServer) Vertices(ctx context.Context, req *pb.FilterRequest) (*pb.VerticesReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vertices, err := s.graph.Vertices(propertiesFromWire(req.Filters))
	if err != nil {
		return nil, statusFromError(err)
	}
	reply := &pb.VerticesReply{Vertices: make([]*pb.Vertex, len(vertices))}
	for i, v := range vertices {
		reply.Vertices[i] = convertVertex(v)
	}
	return reply, nil
}

// Edges returns the edges matching the property filters
func (s *GraphServer) Edges(ctx context.Context, req *pb.FilterRequest) (*pb.EdgesReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	edges, err := s.graph.Edges(propertiesFromWire(req.Filters))
	if err != nil {
		return nil, statusFromError(err)
	}
	reply := &pb.EdgesReply{Edges: make([]*pb.Edge, len(edges))}
	for i, e := range edges {
		reply.Edges[i] = convertEdge(e)
	}
	return reply, nil
}

// Counts returns the native vertex and edge counts
func (s *GraphServer) Counts(ctx context.Context, req *pb.CountsRequest) (*pb.CountsReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vertices, err := s.graph.VertexCount()
	if err != nil {
		return nil, statusFromError(err)
	}
	edges, err := s.graph.EdgeCount()
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.CountsReply{Vertices: vertices, Edges: edges}, nil
}

// Clear removes every edge and vertex from the graph
func (s *GraphServer) Clear(ctx context.Context, req *pb.ClearRequest) (*pb.ClearReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.Clear(); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.ClearReply{}, nil
}

// statusFromError maps the error taxonomy onto gRPC status codes
func statusFromError(err error) error {
	var validation *graph.ErrValidation
	switch {
	case errors.Is(err, graph.ErrGraphClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.As(err, &validation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// propertiesFromWire converts wire properties into the overlay form. Wire
// values arrive in the textual form used at the native boundary, so they
// become string values here.
func propertiesFromWire(wire map[string]string) model.Properties {
	if len(wire) == 0 {
		return nil
	}
	props := model.NewProperties()
	for k, v := range wire {
		props.Set(k, model.String(v))
	}
	return props
}

// convertVertex converts a graph.Vertex to its wire form
func convertVertex(v *graph.Vertex) *pb.Vertex {
	return &pb.Vertex{
		Id:         v.ID(),
		Label:      v.Label(),
		Properties: v.Properties().Native(),
	}
}

// convertEdge converts a graph.Edge to its wire form
func convertEdge(e *graph.Edge) *pb.Edge {
	return &pb.Edge{
		Id:         e.ID(),
		Label:      e.Label(),
		OutId:      e.OutVertex().ID(),
		InId:       e.InVertex().ID(),
		Properties: e.Properties().Native(),
	}
}
