package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// PathTracer implements recursive unidirectional path tracing over a primitive tree.
// It holds no mutable state and may be shared by every render worker.
type PathTracer struct {
	arena      *geometry.Arena
	root       geometry.Handle
	background Gradient
}

// NewPathTracer creates a path tracer for the primitive tree rooted at root
func NewPathTracer(arena *geometry.Arena, root geometry.Handle, background Gradient) *PathTracer {
	return &PathTracer{
		arena:      arena,
		root:       root,
		background: background,
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracer) RayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	var hit material.HitRecord
	if !pt.arena.Hit(pt.root, ray, core.ValidRange(), &hit) {
		return pt.background.Color(ray)
	}

	// Primitives without a material absorb everything
	if hit.Material == nil {
		return core.Vec3{}
	}

	// Start with emitted light from the hit material
	colorEmitted := hit.Material.Emitted(hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	incoming := pt.RayColor(scatter.Scattered, depth-1, sampler)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
