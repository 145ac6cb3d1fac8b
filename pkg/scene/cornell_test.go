package scene

import (
	"context"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestCornellScene_Layout(t *testing.T) {
	s := NewCornellScene()

	if len(s.Shapes) != 8 {
		t.Fatalf("Expected 5 walls, a light and 2 boxes, got %d shapes", len(s.Shapes))
	}
	if got := s.GetPrimitiveCount(); got != 18 {
		t.Errorf("Expected 18 primitives, got %d", got)
	}

	// Both boxes rest on the floor at y = -3.5
	for _, h := range s.Shapes[6:] {
		box := s.Arena.BoundingBox(h)
		if math.Abs(box.Y.Min+cornellHalf) > 1e-3 {
			t.Errorf("Expected box bottom at %f, got %f", -cornellHalf, box.Y.Min)
		}
	}

	// Straight up from under the light hits the emitter before the ceiling
	if err := s.Preprocess(); err != nil {
		t.Fatal(err)
	}
	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, -10.5), core.NewVec3(0, 1, 0))
	if !s.Arena.Hit(s.Root, ray, core.ValidRange(), &rec) {
		t.Fatal("Expected to hit the light")
	}
	if rec.Material.Kind != material.KindDiffuseLight {
		t.Errorf("Expected light material, got %s", rec.Material.Kind)
	}
	if math.Abs(rec.Point.Y-(cornellHalf-1e-4)) > 1e-6 {
		t.Errorf("Expected light just below the ceiling, got y=%f", rec.Point.Y)
	}
}

func TestCornellScene_Defaults(t *testing.T) {
	s := NewCornellScene()
	c := s.CameraConfig
	if c.Center != (core.Vec3{}) || c.LookAt != core.NewVec3(0, 0, -1) || c.VFov != 45 || c.Width != 500 {
		t.Errorf("Unexpected camera %+v", c)
	}
	if s.SamplingConfig.SamplesPerPixel != 500 || s.SamplingConfig.MaxDepth != 10 {
		t.Errorf("Unexpected sampling %+v", s.SamplingConfig)
	}
}

func TestCornellScene_RendersLight(t *testing.T) {
	s := NewCornellScene(renderer.CameraConfig{Width: 24})
	s.SamplingConfig.SamplesPerPixel = 4
	s.SamplingConfig.MaxDepth = 3

	rt, err := s.NewRaytracer()
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	img, _, err := rt.RenderImage(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if lum := renderer.CalculateAverageLuminance(img); lum <= 0 {
		t.Errorf("Expected a lit image, got average luminance %f", lum)
	}
}
