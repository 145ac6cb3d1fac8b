package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Material {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a perfectly diffuse material with a texture
func NewTexturedLambertian(albedo ColorSource) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

// Cosine-weighted sampling cancels the cos/π of the BRDF and the pdf,
// so the estimator weight is just the albedo.
func (m *Material) scatterLambertian(hit HitRecord, sampler core.Sampler) ScatterResult {
	direction := sampler.CosineHemisphere(hit.Normal)
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
	}
}
