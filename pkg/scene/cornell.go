package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box layout: a 7x7 room from z=-15 to z=-8, open towards the camera
const (
	cornellHalf     = 3.5
	cornellBack     = -15.0
	cornellDepth    = 7.0
	cornellLightZ   = -10.0
	cornellTallSize = 1.65
)

// NewCornellScene creates a Cornell box with two rotated boxes and a ceiling area light,
// seen from the origin looking down -Z
func NewCornellScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       500,
		AspectRatio: 1.0,
		VFov:        45.0,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 500,
		MaxDepth:        10,
		Seed:            42,
	}

	s := newScene("cornell", cameraConfig(defaultCameraConfig, cameraOverrides), samplingConfig)

	red := s.AddMaterial("red", material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	white := s.AddMaterial("white", material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	green := s.AddMaterial("green", material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	light := s.AddMaterial("light", material.NewDiffuseLight(core.NewVec3(15, 15, 15)))

	h := cornellHalf
	across := core.NewVec3(2*h, 0, 0)
	up := core.NewVec3(0, 2*h, 0)
	forward := core.NewVec3(0, 0, cornellDepth)

	s.Add(
		s.Arena.NewQuad(core.NewVec3(-h, -h, cornellBack), across, up, white),      // back
		s.Arena.NewQuad(core.NewVec3(-h, -h, cornellBack), across, forward, white), // floor
		s.Arena.NewQuad(core.NewVec3(-h, h, cornellBack), across, forward, white),  // ceiling
		s.Arena.NewQuad(core.NewVec3(h, -h, cornellBack), up, forward, red),        // right
		s.Arena.NewQuad(core.NewVec3(-h, -h, cornellBack), up, forward, green),     // left
	)

	// 1x1 light just below the ceiling
	s.Add(s.Arena.NewQuad(
		core.NewVec3(-0.5, h-1e-4, cornellLightZ),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		light,
	))

	// Both boxes rest on the floor
	w := cornellTallSize
	tall := s.Arena.NewCenteredBox(core.NewVec3(w, 2*w, w), white)
	tall = s.Arena.NewRotateY(tall, 15)
	tall = s.Arena.NewTranslate(tall, core.NewVec3(-1.3, -(h - w), -11.4))

	short := s.Arena.NewCenteredBox(core.NewVec3(w, w, w), white)
	short = s.Arena.NewRotateY(short, -18)
	short = s.Arena.NewTranslate(short, core.NewVec3(1.3, -(h - w/2), -10.4))

	s.Add(tall, short)
	return s
}
