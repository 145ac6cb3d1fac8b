package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3          // One corner of the quad
	U        core.Vec3          // First edge vector
	V        core.Vec3          // Second edge vector
	Normal   core.Vec3          // Unit normal (U × V normalized)
	D        float64            // Plane equation constant: normal · p = D
	W        core.Vec3          // (U × V) / |U × V|², for planar coordinates
	Material *material.Material // Material of the quad
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat *material.Material) Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		D:        normal.Dot(corner),
		W:        n.Multiply(1.0 / n.Dot(n)),
		Material: mat,
	}
}

// NewQuad adds a quad to the arena
func (a *Arena) NewQuad(corner, u, v core.Vec3, mat *material.Material) Handle {
	q := NewQuad(corner, u, v, mat)
	a.quads = append(a.quads, q)
	return a.add(KindQuad, len(a.quads)-1, q.BoundingBox())
}

// Hit tests if a ray intersects with the quad within the open range t
func (q *Quad) Hit(ray core.Ray, t core.Interval, rec *material.HitRecord) bool {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	root := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !t.Surrounds(root) {
		return false
	}

	point := ray.At(root)
	planar := point.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if !core.UnitInterval.Contains(alpha) || !core.UnitInterval.Contains(beta) {
		return false
	}

	rec.T = root
	rec.Point = point
	rec.UV = core.NewVec2(alpha, beta)
	rec.Material = q.Material
	rec.SetFaceNormal(ray, q.Normal)
	return true
}

// BoundingBox returns the box around all four vertices
func (q *Quad) BoundingBox() core.AABB {
	diagonal1 := core.NewAABB(q.Corner, q.Corner.Add(q.U).Add(q.V))
	diagonal2 := core.NewAABB(q.Corner.Add(q.U), q.Corner.Add(q.V))
	return diagonal1.Union(diagonal2)
}
