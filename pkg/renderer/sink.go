package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sink receives finished pixels. Values are tone mapped and lie in [0,1].
type Sink interface {
	Set(x, y int, c core.Vec3)
}

// ImageSink writes pixels into an RGBA image
type ImageSink struct {
	img *image.RGBA
}

// NewImageSink creates a sink backed by a new width x height image
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Set stores the pixel at (x, y), quantized to 8 bits per channel
func (s *ImageSink) Set(x, y int, c core.Vec3) {
	s.img.SetRGBA(x, y, vec3ToColor(c))
}

// Image returns the backing image
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// vec3ToColor converts a display color in [0,1] to RGBA with clamping
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255*c.X + 0.5),
		G: uint8(255*c.Y + 0.5),
		B: uint8(255*c.Z + 0.5),
		A: 255,
	}
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(x, y int, c core.Vec3)

// Set calls f(x, y, c)
func (f SinkFunc) Set(x, y int, c core.Vec3) {
	f(x, y, c)
}
