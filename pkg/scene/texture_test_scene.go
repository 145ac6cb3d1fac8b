package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTextureTestScene creates a row of textured spheres, quads and boxes
func NewTextureTestScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 2, 10),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       800,
		AspectRatio: 16.0 / 9.0,
		VFov:        50.0,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        10,
		Seed:            42,
	}

	s := newScene("texture", cameraConfig(defaultCameraConfig, cameraOverrides), samplingConfig)
	s.Background = integrator.Gradient{
		Top:    core.NewVec3(0.3, 0.4, 0.6),
		Bottom: core.NewVec3(0.2, 0.2, 0.2),
	}

	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
	)
	redGreen := material.NewGradientTexture(256, 256,
		core.NewVec3(1.0, 0.2, 0.2), // Red (top)
		core.NewVec3(0.2, 1.0, 0.2), // Green (bottom)
	)
	brick := material.NewCheckerboardTexture(512, 512, 16,
		core.NewVec3(0.7, 0.3, 0.1),  // Orange
		core.NewVec3(0.5, 0.2, 0.05), // Dark brown
	)

	checkerMat := s.AddMaterial("checker", material.NewTexturedLambertian(checkerboard))
	gradientMat := s.AddMaterial("gradient", material.NewTexturedLambertian(redGreen))
	uvDebugMat := s.AddMaterial("uv-debug", material.NewTexturedLambertian(material.NewUVDebugTexture(256, 256)))
	brickMat := s.AddMaterial("brick", material.NewTexturedLambertian(brick))
	glowMat := s.AddMaterial("glow", material.NewTexturedDiffuseLight(material.NewGradientTexture(64, 64,
		core.NewVec3(4, 4, 4),
		core.NewVec3(1, 0.5, 0.2),
	)))

	// Left to right
	s.Add(
		s.Arena.NewSphere(core.NewVec3(-5, 1, 0), 1.0, checkerMat),
		s.Arena.NewTranslate(s.Arena.NewRotateY(s.Arena.NewCenteredBox(core.NewVec3(1.4, 1.4, 1.4), brickMat), 30), core.NewVec3(-2, 0.7, 0)),
		s.Arena.NewSphere(core.NewVec3(0.5, 1, 0), 1.0, uvDebugMat),
		s.Arena.NewQuad(core.NewVec3(2.5, 0, 0.2), core.NewVec3(1.5, 0, -0.3), core.NewVec3(0, 2, 0), gradientMat),
		s.Arena.NewQuad(core.NewVec3(5, 0, 0), core.NewVec3(1.5, 0, 0), core.NewVec3(0, 2, 0), uvDebugMat),
	)

	// Ground and a glowing panel overhead
	s.Add(
		s.Arena.NewQuad(core.NewVec3(-10, 0, 10), core.NewVec3(20, 0, 0), core.NewVec3(0, 0, -15), brickMat),
		s.Arena.NewQuad(core.NewVec3(-2, 6, 3), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -2), glowMat),
	)

	return s
}
