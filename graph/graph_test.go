package graph

import "testing"

func TestAddVertexReturnsIndex(t *testing.T) {
	g := New[int]()
	a := g.AddVertex(10)
	b := g.AddVertex(20)
	if a != 0 || b != 1 {
		t.Errorf("AddVertex indices = %d, %d, want 0, 1", a, b)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestAddEdgeIsBidirectional(t *testing.T) {
	g := New[int]()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	g.AddEdge(a, b)

	nb := g.Neighbors(a)
	if len(nb) != 1 || nb[0] != b {
		t.Errorf("Neighbors(a) = %v, want [%d]", nb, b)
	}
	nb = g.Neighbors(b)
	if len(nb) != 1 || nb[0] != a {
		t.Errorf("Neighbors(b) = %v, want [%d]", nb, a)
	}
}

func TestNeighborsPreserveDeclarationOrder(t *testing.T) {
	g := New[int]()
	v0 := g.AddVertex(0)
	v1 := g.AddVertex(1)
	v2 := g.AddVertex(2)
	v3 := g.AddVertex(3)
	g.AddEdge(v0, v3)
	g.AddEdge(v0, v1)
	g.AddEdge(v0, v2)

	want := []int{v3, v1, v2}
	got := g.Neighbors(v0)
	if len(got) != len(want) {
		t.Fatalf("Neighbors(v0) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(v0)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestVertexAtOutOfRange(t *testing.T) {
	g := New[int]()
	g.AddVertex(42)
	if _, ok := g.VertexAt(5); ok {
		t.Errorf("VertexAt(5) ok = true, want false")
	}
	if _, ok := g.VertexAt(-1); ok {
		t.Errorf("VertexAt(-1) ok = true, want false")
	}
}
