package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDiffuseLight creates a light-emitting material with a constant color
func NewDiffuseLight(emission core.Vec3) *Material {
	return NewTexturedDiffuseLight(NewSolidColor(emission))
}

// NewTexturedDiffuseLight creates a light-emitting material whose emission is a texture lookup.
// Diffuse lights never scatter.
func NewTexturedDiffuseLight(emission ColorSource) *Material {
	return &Material{Kind: KindDiffuseLight, Emission: emission}
}
