package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	pb "git.canoozie.net/riddling/tinkerbind/pkg/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

var (
	serverAddr = flag.String("server", "localhost:50051", "The server address in the format of host:port")
	op         = flag.String("op", "counts", "Operation: add-vertex, add-edge, get-vertex, remove-vertex, remove-edge, vertices, edges, counts, clear")
	label      = flag.String("label", "", "Vertex or edge label")
	id         = flag.String("id", "", "Vertex or edge id")
	outID      = flag.String("out", "", "Out (source) vertex id for add-edge")
	inID       = flag.String("in", "", "In (target) vertex id for add-edge")
	props      = flag.String("props", "", "JSON-encoded properties or filters")
)

func main() {
	flag.Parse()

	// Set up a connection to the server
	conn, err := grpc.Dial(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Did not connect: %v", err)
	}
	defer conn.Close()
	client := pb.NewGraphServiceClient(conn)

	properties := make(map[string]string)
	if *props != "" {
		if err := json.Unmarshal([]byte(*props), &properties); err != nil {
			log.Fatalf("Failed to parse properties: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch *op {
	case "add-vertex":
		reply, err := client.AddVertex(ctx, &pb.AddVertexRequest{Label: *label, Id: *id, Properties: properties})
		exitOnError(err)
		printVertex(reply.Vertex)
	case "add-edge":
		if *label == "" || *outID == "" || *inID == "" {
			log.Fatalf("add-edge requires -label, -out and -in")
		}
		reply, err := client.AddEdge(ctx, &pb.AddEdgeRequest{Label: *label, Id: *id, OutId: *outID, InId: *inID, Properties: properties})
		exitOnError(err)
		printEdge(reply.Edge)
	case "get-vertex":
		reply, err := client.GetVertex(ctx, &pb.VertexRef{Id: *id})
		exitOnError(err)
		printVertex(reply.Vertex)
	case "remove-vertex":
		reply, err := client.RemoveVertex(ctx, &pb.VertexRef{Id: *id})
		exitOnError(err)
		fmt.Printf("removed: %v\n", reply.Removed)
	case "remove-edge":
		reply, err := client.RemoveEdge(ctx, &pb.EdgeRef{Id: *id})
		exitOnError(err)
		fmt.Printf("removed: %v\n", reply.Removed)
	case "vertices":
		reply, err := client.Vertices(ctx, &pb.FilterRequest{Filters: properties})
		exitOnError(err)
		for _, v := range reply.Vertices {
			printVertex(v)
		}
		fmt.Printf("%d vertices\n", len(reply.Vertices))
	case "edges":
		reply, err := client.Edges(ctx, &pb.FilterRequest{Filters: properties})
		exitOnError(err)
		for _, e := range reply.Edges {
			printEdge(e)
		}
		fmt.Printf("%d edges\n", len(reply.Edges))
	case "counts":
		reply, err := client.Counts(ctx, &pb.CountsRequest{})
		exitOnError(err)
		fmt.Printf("vertices: %d, edges: %d\n", reply.Vertices, reply.Edges)
	case "clear":
		_, err := client.Clear(ctx, &pb.ClearRequest{})
		exitOnError(err)
		fmt.Println("cleared")
	default:
		log.Fatalf("Unknown operation: %s", *op)
	}
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	if st, ok := status.FromError(err); ok {
		log.Fatalf("RPC failed: %s: %s", st.Code(), st.Message())
	}
	log.Fatalf("RPC failed: %v", err)
}

func printVertex(v *pb.Vertex) {
	fmt.Printf("vertex id=%s label=%s properties=%v\n", v.Id, v.Label, v.Properties)
}

func printEdge(e *pb.Edge) {
	fmt.Printf("edge id=%s label=%s out=%s in=%s properties=%v\n", e.Id, e.Label, e.OutId, e.InId, e.Properties)
}
