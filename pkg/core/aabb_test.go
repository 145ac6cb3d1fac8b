package core

import (
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		t        Interval
		expected bool
	}{
		{"straight on", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), ValidRange(), true},
		{"miss", NewRay(NewVec3(3, 0, 5), NewVec3(0, 0, -1)), ValidRange(), false},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), ValidRange(), false},
		{"from inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 0)), ValidRange(), true},
		{"range ends before box", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), NewInterval(0.001, 3), false},
		{"diagonal", NewRay(NewVec3(5, 5, 5), NewVec3(-1, -1, -1)), ValidRange(), true},
		{"parallel outside slab", NewRay(NewVec3(0, 2, 5), NewVec3(0, 0, -1)), ValidRange(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.t); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_PadsFlatSlabs(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 2), NewVec3(1, 1, 2))

	if box.Z.Length() < minSlabWidth {
		t.Errorf("Expected z slab padded to at least %g, got %g", minSlabWidth, box.Z.Length())
	}
	if !box.Hit(NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), ValidRange()) {
		t.Error("Expected a ray through a flat box to hit it")
	}
}

func TestAABB_Union(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomBox := func() AABB {
		return NewAABB(
			NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5),
			NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5),
		)
	}

	for n := 0; n < 50; n++ {
		a, b, c := randomBox(), randomBox(), randomBox()

		if a.Union(b) != b.Union(a) {
			t.Fatalf("Union not commutative for %v, %v", a, b)
		}
		if a.Union(b).Union(c) != a.Union(b.Union(c)) {
			t.Fatalf("Union not associative for %v, %v, %v", a, b, c)
		}
		u := a.Union(b)
		ca, cb := a.Corners(), b.Corners()
		for _, p := range append(ca[:], cb[:]...) {
			if !u.Contains(p) {
				t.Fatalf("Union %v does not contain corner %v", u, p)
			}
		}
	}

	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	if EmptyAABB.Union(box) != box {
		t.Errorf("Expected empty box to be the union identity")
	}
}

func TestAABB_Accessors(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, 5, -2), NewVec3(-1, 0, 4), NewVec3(0, 2, 0))

	if box.Min() != NewVec3(-1, 0, -2) || box.Max() != NewVec3(1, 5, 4) {
		t.Errorf("Unexpected bounds %v - %v", box.Min(), box.Max())
	}
	if box.LongestAxis() != 2 {
		t.Errorf("Expected longest axis Z, got %d", box.LongestAxis())
	}
	if box.Center() != NewVec3(0, 2.5, 1) {
		t.Errorf("Expected center (0, 2.5, 1), got %v", box.Center())
	}
	if moved := box.Translate(NewVec3(1, 1, 1)); moved.Min() != NewVec3(0, 1, -1) {
		t.Errorf("Expected translated min (0,1,-1), got %v", moved.Min())
	}
	if !NewAABBFromPoints().IsEmpty() {
		t.Error("Expected box of no points to be empty")
	}
}
