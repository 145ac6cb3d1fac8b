package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Arena          *geometry.Arena
	Shapes         []geometry.Handle             // Top-level objects in the scene
	Root           geometry.Handle               // Set by Preprocess
	Materials      map[string]*material.Material // Named palette, shared by primitives
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Background     integrator.Gradient
	UseBVH         bool // Wrap Shapes in a BVH instead of a flat list
}

// newScene creates an empty scene with default configs
func newScene(name string, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Arena:          geometry.NewArena(),
		Root:           geometry.NoHandle,
		Materials:      make(map[string]*material.Material),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		Background:     integrator.DefaultGradient(),
		UseBVH:         true,
	}
}

// AddMaterial registers mat under name and returns it
func (s *Scene) AddMaterial(name string, mat *material.Material) *material.Material {
	s.Materials[name] = mat
	return mat
}

// Add appends top-level objects
func (s *Scene) Add(handles ...geometry.Handle) {
	s.Shapes = append(s.Shapes, handles...)
}

// NewGroundQuad adds a large horizontal quad centered at center with its normal pointing up
func (s *Scene) NewGroundQuad(center core.Vec3, size float64, mat *material.Material) geometry.Handle {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (size,0,0) × (0,0,-size) points up
	return s.Arena.NewQuad(corner.Add(core.NewVec3(0, 0, size)), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, -size), mat)
}

// Validate checks configs and materials
func (s *Scene) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	for name, mat := range s.Materials {
		if err := mat.Validate(); err != nil {
			return fmt.Errorf("scene %q: material %q: %w", s.Name, name, err)
		}
	}
	return nil
}

// Preprocess builds the acceleration structure over Shapes. It is a no-op once Root is set.
func (s *Scene) Preprocess() error {
	if s.Root != geometry.NoHandle {
		return nil
	}
	for _, h := range s.Shapes {
		if !s.Arena.Valid(h) {
			return fmt.Errorf("scene %q: invalid shape handle %d", s.Name, h)
		}
	}

	// NewBVH reorders its input
	handles := append([]geometry.Handle(nil), s.Shapes...)
	if s.UseBVH {
		s.Root = s.Arena.NewBVH(handles)
	} else {
		s.Root = s.Arena.NewList(handles...)
	}
	return nil
}

// GetPrimitiveCount returns the total number of spheres and quads in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, h := range s.Shapes {
		count += s.Arena.PrimitiveCount(h)
	}
	return count
}

// GetBVHStats describes the hierarchy built by Preprocess
func (s *Scene) GetBVHStats() geometry.BVHStats {
	if s.Root == geometry.NoHandle {
		return geometry.BVHStats{}
	}
	return s.Arena.BVHStats(s.Root)
}

// NewRaytracer validates and preprocesses the scene and wires a path tracer to its camera
func (s *Scene) NewRaytracer() (*renderer.Raytracer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := s.Preprocess(); err != nil {
		return nil, err
	}

	camera := renderer.NewCamera(s.CameraConfig)
	pt := integrator.NewPathTracer(s.Arena, s.Root, s.Background)
	return renderer.NewRaytracer(camera, pt, s.SamplingConfig), nil
}

func cameraConfig(defaults renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}
