package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// NewSphere adds a sphere to the arena
func (a *Arena) NewSphere(center core.Vec3, radius float64, mat *material.Material) Handle {
	s := NewSphere(center, radius, mat)
	a.spheres = append(a.spheres, s)
	return a.add(KindSphere, len(a.spheres)-1, s.BoundingBox())
}

// Hit tests if a ray intersects with the sphere within the open range t
func (s *Sphere) Hit(ray core.Ray, t core.Interval, rec *material.HitRecord) bool {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2 * a)
	if !t.Surrounds(root) {
		root = (-b + sqrtD) / (2 * a)
		if !t.Surrounds(root) {
			return false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	rec.T = root
	rec.Point = point
	rec.SetFaceNormal(ray, outwardNormal)
	rec.UV = SphereUV(outwardNormal)
	rec.Material = s.Material
	return true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// SphereUV maps a point p on the unit sphere to texture coordinates.
// u is the angle around the Y axis from X=-1, v the angle from Y=-1 to Y=+1.
//
//	<1 0 0> yields <0.50 0.50>       <-1  0  0> yields <0.00 0.50>
//	<0 1 0> yields <0.50 1.00>       < 0 -1  0> yields <0.50 0.00>
//	<0 0 1> yields <0.25 0.50>       < 0  0 -1> yields <0.75 0.50>
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(core.NewInterval(-1, 1).Clamp(-p.Y))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
