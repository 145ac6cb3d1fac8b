package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox adds a closed box with the two points as opposite corners to the arena.
// The box is a list of six quads whose normals point outward.
func (a *Arena) NewBox(p0, p1 core.Vec3, mat *material.Material) Handle {
	lo := core.NewVec3(math.Min(p0.X, p1.X), math.Min(p0.Y, p1.Y), math.Min(p0.Z, p1.Z))
	hi := core.NewVec3(math.Max(p0.X, p1.X), math.Max(p0.Y, p1.Y), math.Max(p0.Z, p1.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	return a.NewList(
		a.NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, mat),          // front
		a.NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, mat), // right
		a.NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, mat), // back
		a.NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, mat),          // left
		a.NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), mat), // top
		a.NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, mat),          // bottom
	)
}

// NewCenteredBox adds a box of the given full size centered at the origin.
// Place it with NewRotateY and NewTranslate.
func (a *Arena) NewCenteredBox(size core.Vec3, mat *material.Material) Handle {
	half := size.Multiply(0.5)
	return a.NewBox(half.Negate(), half, mat)
}
