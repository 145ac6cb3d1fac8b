package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // Higher and farther back than the spheres
		LookAt:        core.NewVec3(0, 0.5, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.5, // Slight depth of field blur
		FocusDistance: 0.0,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
		Seed:            42,
	}

	s := newScene("default", cameraConfig(defaultCameraConfig, cameraOverrides), samplingConfig)

	ground := s.AddMaterial("ground", material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)))
	blue := s.AddMaterial("blue", material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	red := s.AddMaterial("red", material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))
	silver := s.AddMaterial("silver", material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0))
	gold := s.AddMaterial("gold", material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	glass := s.AddMaterial("glass", material.NewDielectric(1.5))
	sun := s.AddMaterial("sun", material.NewDiffuseLight(core.NewVec3(15.0, 14.0, 13.0)))

	s.Add(
		s.Arena.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, red),
		s.Arena.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, silver),
		s.Arena.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, gold),
		s.Arena.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),
		s.NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, ground),
	)

	// Hollow glass sphere: the negative radius flips the inner surface's normals
	s.Add(
		s.Arena.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass),
		s.Arena.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass),
		s.Arena.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, blue),
	)

	s.Add(s.Arena.NewSphere(core.NewVec3(30, 30.5, 15), 10, sun))
	return s
}

// NewSimpleSphereScene creates a single diffuse sphere under the sky gradient
func NewSimpleSphereScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}

	s := newScene("sphere", cameraConfig(defaultCameraConfig, cameraOverrides), samplingConfig)
	gray := s.AddMaterial("gray", material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.Add(s.Arena.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))
	return s
}
