package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes a positionable camera with optional depth of field
type CameraConfig struct {
	Center        core.Vec3 // Point the camera looks from
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Camera-relative "up" direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Defocus cone angle in degrees, 0 = pinhole
	FocusDistance float64   // Distance to the plane of perfect focus, 0 = distance to LookAt
}

// DefaultCameraConfig looks down -Z from the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
}

// Height returns the image height implied by Width and AspectRatio, at least 1
func (c CameraConfig) Height() int {
	if c.AspectRatio <= 0 {
		return 1
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Validate checks the config for values that cannot produce rays
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidConfig, c.AspectRatio)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: vertical field of view must be in (0, 180), got %g", ErrInvalidConfig, c.VFov)
	}
	if c.Center.Subtract(c.LookAt).NearZero() {
		return fmt.Errorf("%w: camera center and look-at point coincide", ErrInvalidConfig)
	}
	if c.Center.Subtract(c.LookAt).Cross(c.Up).NearZero() {
		return fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidConfig)
	}
	return nil
}

// Camera generates rays for rendering. Pixel (0, 0) is the top-left corner.
type Camera struct {
	config CameraConfig
	width  int
	height int

	center       core.Vec3
	pixel00      core.Vec3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	w            core.Vec3 // Points opposite the view direction
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera creates a camera from config. Call config.Validate first for untrusted input.
func NewCamera(config CameraConfig) *Camera {
	width := config.Width
	height := config.Height()

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal camera basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Multiply(1.0 / float64(width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(config.Aperture*math.Pi/180.0/2)

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		center:       config.Center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// GetRay returns a ray through a point jittered within ±0.5 pixel of the center
// of pixel (i, j). With a non-zero aperture the origin is sampled on the defocus disk.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offsetU := sampler.UniformFloat(-0.5, 0.5)
	offsetV := sampler.UniformFloat(-0.5, 0.5)

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetU)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetV))

	origin := c.center
	if c.config.Aperture > 0 {
		p := sampler.InUnitDisk()
		origin = c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// GetCenterRay returns the unjittered pinhole ray through the center of pixel (i, j)
func (c *Camera) GetCenterRay(i, j int) core.Ray {
	pixelCenter := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	return core.NewRay(c.center, pixelCenter.Subtract(c.center))
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	zero := core.Vec3{}
	if override.Center != zero {
		base.Center = override.Center
	}
	if override.LookAt != zero {
		base.LookAt = override.LookAt
	}
	if override.Up != zero {
		base.Up = override.Up
	}
	if override.Width != 0 {
		base.Width = override.Width
	}
	if override.AspectRatio != 0 {
		base.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		base.VFov = override.VFov
	}
	if override.Aperture != 0 {
		base.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		base.FocusDistance = override.FocusDistance
	}
	return base
}
