package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for materials that cannot be rendered
var ErrInvalidMaterial = errors.New("invalid material")

// Kind identifies the scattering law of a Material
type Kind uint8

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindDiffuseLight
)

// String returns the lowercase name used in scene files
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindDiffuseLight:
		return "diffuse_light"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Material is a closed set of scattering laws. Only the fields used by Kind are
// meaningful. A Material is never mutated once a scene has been built and is
// shared by every primitive that references it.
type Material struct {
	Kind Kind

	Albedo          ColorSource // Lambertian, Metal
	Fuzz            float64     // Metal: 0 = perfect mirror, 1 = very fuzzy
	RefractiveIndex float64     // Dielectric
	Emission        ColorSource // DiffuseLight
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	UV        core.Vec2 // Surface parameterization at Point
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  *Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Scatter produces the outgoing ray and attenuation for an incoming ray at hit.
// It returns false when the material absorbs the ray.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler), true
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler), true
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler), true
	default:
		return ScatterResult{}, false
	}
}

// Emitted returns the light emitted at the surface point; black for non-emitters
func (m *Material) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	if m.Kind != KindDiffuseLight {
		return core.Vec3{}
	}
	return m.Emission.Evaluate(uv, point)
}

// Validate reports whether the material's parameters are usable
func (m *Material) Validate() error {
	switch m.Kind {
	case KindLambertian, KindMetal:
		if m.Albedo == nil {
			return fmt.Errorf("%w: %s without albedo", ErrInvalidMaterial, m.Kind)
		}
	case KindDielectric:
		if m.RefractiveIndex <= 0 {
			return fmt.Errorf("%w: refractive index %g must be positive", ErrInvalidMaterial, m.RefractiveIndex)
		}
	case KindDiffuseLight:
		if m.Emission == nil {
			return fmt.Errorf("%w: diffuse light without emission", ErrInvalidMaterial)
		}
	default:
		return fmt.Errorf("%w: unknown %s", ErrInvalidMaterial, m.Kind)
	}
	return nil
}
