package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrInvalidScene is returned for scene files that decode but describe an unusable scene
var ErrInvalidScene = errors.New("invalid scene")

// Vec3Cfg is a JSON [x, y, z] triple
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraCfg overrides the default camera; zero fields keep their defaults
type CameraCfg struct {
	Center        *Vec3Cfg `json:"center,omitempty"`
	LookAt        *Vec3Cfg `json:"lookAt,omitempty"`
	Up            *Vec3Cfg `json:"up,omitempty"`
	Width         int      `json:"width,omitempty"`
	AspectRatio   float64  `json:"aspectRatio,omitempty"`
	VFov          float64  `json:"vfov,omitempty"`
	Aperture      float64  `json:"aperture,omitempty"`
	FocusDistance float64  `json:"focusDistance,omitempty"`
}

// SamplingCfg overrides the default sampling config
type SamplingCfg struct {
	SamplesPerPixel *int   `json:"samplesPerPixel,omitempty"`
	MaxDepth        *int   `json:"maxDepth,omitempty"`
	Workers         *int   `json:"workers,omitempty"`
	Seed            *int64 `json:"seed,omitempty"`
}

// BackgroundCfg is the sky gradient
type BackgroundCfg struct {
	Top    Vec3Cfg `json:"top"`
	Bottom Vec3Cfg `json:"bottom"`
}

// MaterialCfg describes one named material. Type is one of lambertian, metal,
// dielectric or diffuse_light. Texture, when set, is an image path relative to
// the scene file and replaces Albedo (lambertian) or Emission (diffuse_light).
type MaterialCfg struct {
	Type            string   `json:"type"`
	Albedo          *Vec3Cfg `json:"albedo,omitempty"`
	Texture         string   `json:"texture,omitempty"`
	Fuzz            float64  `json:"fuzz,omitempty"`
	RefractiveIndex float64  `json:"refractiveIndex,omitempty"`
	Emission        *Vec3Cfg `json:"emission,omitempty"`
}

// ObjectCfg describes one top-level primitive. Type is sphere, quad or box.
// RotateY (degrees) is applied before Translate.
type ObjectCfg struct {
	Type     string `json:"type"`
	Material string `json:"material"`

	Center *Vec3Cfg `json:"center,omitempty"` // sphere
	Radius float64  `json:"radius,omitempty"` // sphere

	Corner *Vec3Cfg `json:"corner,omitempty"` // quad
	U      *Vec3Cfg `json:"u,omitempty"`      // quad
	V      *Vec3Cfg `json:"v,omitempty"`      // quad

	Min *Vec3Cfg `json:"min,omitempty"` // box
	Max *Vec3Cfg `json:"max,omitempty"` // box

	RotateY   float64  `json:"rotateY,omitempty"`
	Translate *Vec3Cfg `json:"translate,omitempty"`
}

// FileCfg is the top-level layout of a JSON scene file
type FileCfg struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Group       string                 `json:"group,omitempty"`
	Camera      CameraCfg              `json:"camera"`
	Sampling    SamplingCfg            `json:"sampling"`
	Background  *BackgroundCfg         `json:"background,omitempty"`
	BVH         *bool                  `json:"bvh,omitempty"`
	Materials   map[string]MaterialCfg `json:"materials"`
	Objects     []ObjectCfg            `json:"objects"`
}

// Load reads a scene from a JSON file. Texture paths resolve against the file's directory.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := parse(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse reads a scene from JSON. Texture paths resolve against the working directory.
func Parse(r io.Reader) (*Scene, error) {
	return parse(r, ".")
}

func parse(r io.Reader, baseDir string) (*Scene, error) {
	var cfg FileCfg
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return cfg.Build(baseDir)
}

// Build assembles the scene described by cfg
func (cfg *FileCfg) Build(baseDir string) (*Scene, error) {
	sampling := renderer.DefaultSamplingConfig().Apply(renderer.SamplingOverrides{
		SamplesPerPixel: cfg.Sampling.SamplesPerPixel,
		MaxDepth:        cfg.Sampling.MaxDepth,
		NumWorkers:      cfg.Sampling.Workers,
		Seed:            cfg.Sampling.Seed,
	})

	s := newScene(cfg.Name, renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), cfg.Camera.config()), sampling)
	if cfg.Background != nil {
		s.Background = integrator.Gradient{Top: cfg.Background.Top.vec(), Bottom: cfg.Background.Bottom.vec()}
	}
	if cfg.BVH != nil {
		s.UseBVH = *cfg.BVH
	}

	for name, mc := range cfg.Materials {
		mat, err := mc.build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		s.AddMaterial(name, mat)
	}

	for i, oc := range cfg.Objects {
		h, err := oc.build(s)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, oc.Type, err)
		}
		s.Add(h)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return s, nil
}

func (c CameraCfg) config() renderer.CameraConfig {
	config := renderer.CameraConfig{
		Width:         c.Width,
		AspectRatio:   c.AspectRatio,
		VFov:          c.VFov,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
	}
	if c.Center != nil {
		config.Center = c.Center.vec()
	}
	if c.LookAt != nil {
		config.LookAt = c.LookAt.vec()
	}
	if c.Up != nil {
		config.Up = c.Up.vec()
	}
	return config
}

func (mc MaterialCfg) build(baseDir string) (*material.Material, error) {
	var texture material.ColorSource
	if mc.Texture != "" {
		path := mc.Texture
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		img, err := loaders.LoadImage(path)
		if err != nil {
			return nil, err
		}
		texture = img
	}

	var mat *material.Material
	switch mc.Type {
	case material.KindLambertian.String():
		if texture == nil {
			if mc.Albedo == nil {
				return nil, fmt.Errorf("%w: lambertian needs albedo or texture", ErrInvalidScene)
			}
			texture = material.NewSolidColor(mc.Albedo.vec())
		}
		mat = material.NewTexturedLambertian(texture)
	case material.KindMetal.String():
		if mc.Albedo == nil {
			return nil, fmt.Errorf("%w: metal needs albedo", ErrInvalidScene)
		}
		mat = material.NewMetal(mc.Albedo.vec(), mc.Fuzz)
	case material.KindDielectric.String():
		mat = material.NewDielectric(mc.RefractiveIndex)
	case material.KindDiffuseLight.String():
		if texture == nil {
			if mc.Emission == nil {
				return nil, fmt.Errorf("%w: diffuse_light needs emission or texture", ErrInvalidScene)
			}
			texture = material.NewSolidColor(mc.Emission.vec())
		}
		mat = material.NewTexturedDiffuseLight(texture)
	default:
		return nil, fmt.Errorf("%w: unknown material type %q", ErrInvalidScene, mc.Type)
	}

	if err := mat.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return mat, nil
}

func (oc ObjectCfg) build(s *Scene) (geometry.Handle, error) {
	mat, ok := s.Materials[oc.Material]
	if !ok {
		return geometry.NoHandle, fmt.Errorf("%w: unknown material %q", ErrInvalidScene, oc.Material)
	}

	var h geometry.Handle
	switch oc.Type {
	case "sphere":
		if oc.Center == nil || oc.Radius == 0 {
			return geometry.NoHandle, fmt.Errorf("%w: sphere needs center and non-zero radius", ErrInvalidScene)
		}
		h = s.Arena.NewSphere(oc.Center.vec(), oc.Radius, mat)
	case "quad":
		if oc.Corner == nil || oc.U == nil || oc.V == nil {
			return geometry.NoHandle, fmt.Errorf("%w: quad needs corner, u and v", ErrInvalidScene)
		}
		if oc.U.vec().Cross(oc.V.vec()).NearZero() {
			return geometry.NoHandle, fmt.Errorf("%w: quad edges are parallel", ErrInvalidScene)
		}
		h = s.Arena.NewQuad(oc.Corner.vec(), oc.U.vec(), oc.V.vec(), mat)
	case "box":
		if oc.Min == nil || oc.Max == nil {
			return geometry.NoHandle, fmt.Errorf("%w: box needs min and max", ErrInvalidScene)
		}
		h = s.Arena.NewBox(oc.Min.vec(), oc.Max.vec(), mat)
	default:
		return geometry.NoHandle, fmt.Errorf("%w: unknown object type %q", ErrInvalidScene, oc.Type)
	}

	if oc.RotateY != 0 {
		h = s.Arena.NewRotateY(h, oc.RotateY)
	}
	if oc.Translate != nil {
		h = s.Arena.NewTranslate(h, oc.Translate.vec())
	}
	return h, nil
}
