package core

import (
	"math"
	"testing"
)

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(11)
	b := NewSeededSampler(11)

	for i := 0; i < 10; i++ {
		if a.UniformFloat(0, 1) != b.UniformFloat(0, 1) {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestRandomSampler_Ranges(t *testing.T) {
	sampler := NewSeededSampler(3)
	normal := NewVec3(0, 0, 1)

	for i := 0; i < 1000; i++ {
		if v := sampler.UniformFloat(-2, 5); v < -2 || v >= 5 {
			t.Fatalf("UniformFloat out of range: %f", v)
		}
		if u := sampler.UnitVector(); math.Abs(u.Length()-1) > 1e-9 {
			t.Fatalf("UnitVector not unit length: %v", u)
		}
		if d := sampler.CosineHemisphere(normal); d.Dot(normal) < 0 || math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("CosineHemisphere left the hemisphere: %v", d)
		}
		if p := sampler.InUnitDisk(); p.Z != 0 || p.Length() > 1+1e-12 {
			t.Fatalf("InUnitDisk outside the disk: %v", p)
		}
	}
}

func TestSampleCosineHemisphere_ArbitraryNormal(t *testing.T) {
	normal := NewVec3(1, 1, -1).Normalize()
	for _, s := range []Vec2{NewVec2(0, 0), NewVec2(0.5, 0.5), NewVec2(0.9, 0.99)} {
		d := SampleCosineHemisphere(normal, s)
		if d.Dot(normal) < -1e-12 {
			t.Errorf("Sample %v: direction %v points below the surface", s, d)
		}
	}

	// Sample (0, 0) points straight along the normal
	if d := SampleCosineHemisphere(normal, NewVec2(0, 0)); d.Subtract(normal).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", normal, d)
	}
}

func TestOrthonormalBasis(t *testing.T) {
	for _, n := range []Vec3{NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, -1), NewVec3(1, 2, 3).Normalize()} {
		u, v := OrthonormalBasis(n)
		if math.Abs(u.Dot(n)) > 1e-12 || math.Abs(v.Dot(n)) > 1e-12 || math.Abs(u.Dot(v)) > 1e-12 {
			t.Errorf("Basis for %v not orthogonal: %v %v", n, u, v)
		}
		if math.Abs(u.Length()-1) > 1e-12 || math.Abs(v.Length()-1) > 1e-12 {
			t.Errorf("Basis for %v not unit length: %v %v", n, u, v)
		}
	}
}
