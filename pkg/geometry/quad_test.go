package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestQuad_Hit_PlanarCoordinates(t *testing.T) {
	corner := core.NewVec3(-1, -1, -2)
	u := core.NewVec3(2, 0, 0)
	v := core.NewVec3(0, 3, 0)
	quad := NewQuad(corner, u, v, nil)

	tests := []struct {
		name      string
		alpha     float64
		beta      float64
		expectHit bool
	}{
		{"interior point", 0.3, 0.6, true},
		{"center", 0.5, 0.5, true},
		{"corner is inside", 0, 0, true},
		{"outside along u", 1.5, 0.5, false},
		{"outside along v", 0.5, -0.2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := corner.Add(u.Multiply(tt.alpha)).Add(v.Multiply(tt.beta))
			origin := target.Add(core.NewVec3(0, 0, 5))
			ray := core.NewRay(origin, target.Subtract(origin))

			var rec material.HitRecord
			hit := quad.Hit(ray, core.ValidRange(), &rec)
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, hit)
			}
			if !hit {
				return
			}

			if math.Abs(rec.UV.X-tt.alpha) > 1e-9 || math.Abs(rec.UV.Y-tt.beta) > 1e-9 {
				t.Errorf("Expected UV (%f, %f), got (%f, %f)", tt.alpha, tt.beta, rec.UV.X, rec.UV.Y)
			}
			if math.Abs(rec.T-1) > 1e-9 {
				t.Errorf("Expected t=1, got %f", rec.T)
			}
			if rec.Point.Subtract(target).Length() > 1e-9 {
				t.Errorf("Expected point %v, got %v", target, rec.Point)
			}
		})
	}
}

func TestQuad_Hit_FaceOrientation(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"from front", core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1), true, core.NewVec3(0, 0, 1)},
		{"from behind", core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1), false, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec material.HitRecord
			if !quad.Hit(core.NewRay(tt.origin, tt.direction), core.ValidRange(), &rec) {
				t.Fatal("Expected hit, but got miss")
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, rec.FrontFace)
			}
			if rec.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
		})
	}
}

func TestQuad_Hit_ParallelRay(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(-1, 0.5, 0), core.NewVec3(1, 0, 0))

	var rec material.HitRecord
	if quad.Hit(ray, core.ValidRange(), &rec) {
		t.Error("Expected parallel ray to miss")
	}
	if rec != (material.HitRecord{}) {
		t.Error("Expected miss to leave the record untouched")
	}
}

func TestQuad_BoundingBox_IsPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 2, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), nil)
	box := quad.BoundingBox()

	if box.Y.Length() <= 0 {
		t.Fatalf("Expected flat quad to get a padded Y slab, got %v", box.Y)
	}
	if !box.Y.Contains(2) {
		t.Errorf("Expected padded slab to contain the plane, got %v", box.Y)
	}
	if box.X != core.NewInterval(0, 1) || box.Z != core.NewInterval(0, 1) {
		t.Errorf("Unexpected extent %v", box)
	}
}
