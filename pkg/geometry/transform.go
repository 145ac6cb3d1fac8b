package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a child primitive by a fixed offset
type Translate struct {
	Child  Handle
	Offset core.Vec3
}

// NewTranslate adds a primitive that places child at child+offset
func (a *Arena) NewTranslate(child Handle, offset core.Vec3) Handle {
	a.translates = append(a.translates, Translate{Child: child, Offset: offset})
	return a.add(KindTranslate, len(a.translates)-1, a.nodes[child].box.Translate(offset))
}

func (a *Arena) hitTranslate(tr *Translate, ray core.Ray, t core.Interval, rec *material.HitRecord) bool {
	// Move the ray into object space
	local := core.NewRay(ray.Origin.Subtract(tr.Offset), ray.Direction)
	if !a.Hit(tr.Child, local, t, rec) {
		return false
	}

	rec.Point = rec.Point.Add(tr.Offset)
	return true
}

// RotateY rotates a child primitive about the Y axis
type RotateY struct {
	Child   Handle
	Degrees float64
	forward mgl64.Mat3 // object to world
	inverse mgl64.Mat3 // world to object
}

// NewRotateY adds a primitive that rotates child by degrees about the Y axis.
// Positive angles turn +X towards -Z.
func (a *Arena) NewRotateY(child Handle, degrees float64) Handle {
	forward := mgl64.Rotate3DY(mgl64.DegToRad(degrees))
	r := RotateY{
		Child:   child,
		Degrees: degrees,
		forward: forward,
		inverse: forward.Transpose(),
	}

	box := a.nodes[child].box
	corners := box.Corners()
	rotated := make([]core.Vec3, 0, len(corners))
	for _, c := range corners {
		rotated = append(rotated, mulVec(forward, c))
	}

	a.rotations = append(a.rotations, r)
	return a.add(KindRotateY, len(a.rotations)-1, core.NewAABBFromPoints(rotated...))
}

func (a *Arena) hitRotateY(r *RotateY, ray core.Ray, t core.Interval, rec *material.HitRecord) bool {
	local := core.NewRay(mulVec(r.inverse, ray.Origin), mulVec(r.inverse, ray.Direction))
	if !a.Hit(r.Child, local, t, rec) {
		return false
	}

	// Recover the outward normal in object space before rotating it back
	outward := rec.Normal
	if !rec.FrontFace {
		outward = outward.Negate()
	}

	rec.Point = mulVec(r.forward, rec.Point)
	rec.SetFaceNormal(ray, mulVec(r.forward, outward).Normalize())
	return true
}

func mulVec(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}
