package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3
}

// Gradient is a sky that blends from Bottom (looking straight down) to Top
// (looking straight up) by the height of the ray direction
type Gradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// DefaultGradient returns a white-to-sky-blue background
func DefaultGradient() Gradient {
	return Gradient{
		Top:    core.NewVec3(1.0, 1.0, 1.0),
		Bottom: core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the background color seen along ray
func (g Gradient) Color(ray core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}
