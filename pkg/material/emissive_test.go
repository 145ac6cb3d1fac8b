package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	mat := NewDiffuseLight(emission)

	if _, ok := mat.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), frontHit(mat), core.NewSeededSampler(1)); ok {
		t.Error("Expected diffuse light to absorb instead of scattering")
	}
	if e := mat.Emitted(core.NewVec2(0.3, 0.7), core.NewVec3(1, 2, 3)); e != emission {
		t.Errorf("Expected emission %v, got %v", emission, e)
	}
}

func TestTexturedDiffuseLight(t *testing.T) {
	top, bottom := core.NewVec3(4, 4, 4), core.NewVec3(0, 0, 0)
	mat := NewTexturedDiffuseLight(NewGradientTexture(1, 3, top, bottom))

	if e := mat.Emitted(core.NewVec2(0.5, 1), core.Vec3{}); e != top {
		t.Errorf("Expected top emission %v, got %v", top, e)
	}
	if e := mat.Emitted(core.NewVec2(0.5, 0), core.Vec3{}); e != bottom {
		t.Errorf("Expected bottom emission %v, got %v", bottom, e)
	}
}
