package dispatch

import (
	"math"
	"reflect"
	"testing"
)

func demoGraph() *CityGraph {
	g := NewCityGraph()
	g.AddEdge("Hospital_A", "Central_Hub", 5)
	g.AddEdge("Central_Hub", "Loc_North", 3)
	g.AddEdge("Central_Hub", "Loc_South", 4)
	g.AddEdge("Loc_North", "Donor_1_Home", 2)
	g.AddEdge("Loc_South", "Donor_2_Home", 2)
	return g
}

func TestShortestPath(t *testing.T) {
	g := demoGraph()

	dist, path := g.ShortestPath("Hospital_A", "Donor_1_Home")
	if dist != 10 {
		t.Fatalf("expected distance 10, got %v", dist)
	}
	want := []string{"Hospital_A", "Central_Hub", "Loc_North", "Donor_1_Home"}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("expected path %v, got %v", want, path)
	}
}

func TestShortestPathPrefersCheaperRoute(t *testing.T) {
	g := demoGraph()
	// A shortcut makes the direct hop cheaper than via the hub.
	g.AddEdge("Hospital_A", "Donor_2_Home", 3)

	dist, path := g.ShortestPath("Hospital_A", "Donor_2_Home")
	if dist != 3 {
		t.Fatalf("expected the shortcut distance 3, got %v", dist)
	}
	if len(path) != 2 {
		t.Fatalf("expected the direct path, got %v", path)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := demoGraph()
	g.AddEdge("Island_A", "Island_B", 1)

	dist, path := g.ShortestPath("Hospital_A", "Island_B")
	if !math.IsInf(dist, 1) {
		t.Fatalf("expected +Inf for unreachable node, got %v", dist)
	}
	if path != nil {
		t.Fatalf("expected nil path, got %v", path)
	}
}

func TestShortestPathUnknownNode(t *testing.T) {
	g := demoGraph()
	if dist, _ := g.ShortestPath("Hospital_A", "Nowhere"); !math.IsInf(dist, 1) {
		t.Fatalf("expected +Inf for unknown node, got %v", dist)
	}
	if dist, _ := g.ShortestPath("Nowhere", "Hospital_A"); !math.IsInf(dist, 1) {
		t.Fatalf("expected +Inf for unknown start, got %v", dist)
	}
}

func TestShortestPathToSelf(t *testing.T) {
	g := demoGraph()
	dist, path := g.ShortestPath("Hospital_A", "Hospital_A")
	if dist != 0 {
		t.Fatalf("expected 0, got %v", dist)
	}
	if !reflect.DeepEqual(path, []string{"Hospital_A"}) {
		t.Fatalf("expected single-node path, got %v", path)
	}
}
