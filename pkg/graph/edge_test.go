package graph

import (
	"errors"
	"strings"
	"testing"

	"git.canoozie.net/riddling/tinkerbind/pkg/model"
)

func TestEdgeAccessors(t *testing.T) {
	g, _ := openTestGraph(t)
	alice, _ := g.AddVertexWithID("person", "alice", nil)
	bob, _ := g.AddVertexWithID("person", "bob", nil)

	e, err := g.AddEdgeWithID("knows", "e1", alice, bob, model.Properties{"since": model.Int(2018)})
	if err != nil {
		t.Fatalf("Failed to add edge: %v", err)
	}

	if e.ID() != "e1" {
		t.Errorf("Expected id e1, got %q", e.ID())
	}
	if e.Label() != "knows" {
		t.Errorf("Expected label knows, got %q", e.Label())
	}
	if since, ok := e.Property("since"); !ok || !since.Equal(model.Int(2018)) {
		t.Errorf("Expected since 2018, got %v (ok=%v)", since, ok)
	}
}

func TestEdgeOther(t *testing.T) {
	g, _ := openTestGraph(t)
	alice, _ := g.AddVertexWithID("person", "alice", nil)
	bob, _ := g.AddVertexWithID("person", "bob", nil)
	carol, _ := g.AddVertexWithID("person", "carol", nil)
	e, _ := g.AddEdge("knows", alice, bob, nil)

	other, err := e.Other(alice)
	if err != nil {
		t.Fatalf("Failed to resolve other endpoint: %v", err)
	}
	if !other.Equal(bob) {
		t.Errorf("Expected bob opposite alice, got %s", other.ID())
	}

	other, err = e.Other(bob)
	if err != nil {
		t.Fatalf("Failed to resolve other endpoint: %v", err)
	}
	if !other.Equal(alice) {
		t.Errorf("Expected alice opposite bob, got %s", other.ID())
	}

	_, err = e.Other(carol)
	var validation *ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("Expected ErrValidation for a non-endpoint, got %T: %v", err, err)
	}
}

func TestEdgeOtherSelfLoop(t *testing.T) {
	g, _ := openTestGraph(t)
	alice, _ := g.AddVertexWithID("person", "alice", nil)
	e, _ := g.AddEdge("likes", alice, alice, nil)

	other, err := e.Other(alice)
	if err != nil {
		t.Fatalf("Failed to resolve other endpoint: %v", err)
	}
	if !other.Equal(alice) {
		t.Error("Expected the self-loop to resolve back to the same vertex")
	}
}

func TestEdgePropertyOverlay(t *testing.T) {
	g, _ := openTestGraph(t)
	alice, _ := g.AddVertexWithID("person", "alice", nil)
	bob, _ := g.AddVertexWithID("person", "bob", nil)
	e, _ := g.AddEdge("knows", alice, bob, nil)

	if err := e.SetProperty("weight", model.Float(0.8)); err != nil {
		t.Fatalf("Failed to set property: %v", err)
	}
	weight := e.PropertyOr("weight", model.Null())
	if !weight.Equal(model.Float(0.8)) {
		t.Errorf("Expected weight 0.8, got %v", weight)
	}

	if err := e.SetProperty("", model.Int(1)); err == nil {
		t.Error("Expected an empty key to be rejected")
	}

	previous, existed := e.RemoveProperty("weight")
	if !existed || !previous.Equal(model.Float(0.8)) {
		t.Errorf("Expected removal to return 0.8, got %v (existed=%v)", previous, existed)
	}
}

func TestEdgeEqual(t *testing.T) {
	g1, _ := openTestGraph(t)
	g2, _ := openTestGraph(t)

	alice1, _ := g1.AddVertexWithID("person", "alice", nil)
	bob1, _ := g1.AddVertexWithID("person", "bob", nil)
	alice2, _ := g2.AddVertexWithID("person", "alice", nil)
	bob2, _ := g2.AddVertexWithID("person", "bob", nil)

	e1, _ := g1.AddEdge("knows", alice1, bob1, nil)
	e2, _ := g2.AddEdge("knows", alice2, bob2, nil)

	if !e1.Equal(e1) {
		t.Error("Expected an edge to equal itself")
	}
	// Same derived id, different graph
	if e1.Equal(e2) {
		t.Error("Expected same-id edges from different graphs to be unequal")
	}
	var nilEdge *Edge
	if !nilEdge.Equal(nil) {
		t.Error("Expected nil to equal nil")
	}
	if e1.Equal(nil) {
		t.Error("Expected an edge to be unequal to nil")
	}
}

func TestEdgeString(t *testing.T) {
	g, _ := openTestGraph(t)
	alice, _ := g.AddVertexWithID("person", "alice", nil)
	bob, _ := g.AddVertexWithID("person", "bob", nil)
	e, _ := g.AddEdge("knows", alice, bob, nil)

	s := e.String()
	for _, want := range []string{"knows", "alice", "bob"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected the string form to contain %q, got %s", want, s)
		}
	}
}
