package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidConfig is returned when a render cannot start with the given settings
var ErrInvalidConfig = errors.New("invalid render config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel row workers, 0 = one per logical CPU
	Seed            int64 // Base seed; row r samples with seed+r
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate checks the config for values that cannot render
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// SamplingOverrides holds explicitly requested sampling settings.
// Nil fields keep the base value, so zero is a valid override.
type SamplingOverrides struct {
	SamplesPerPixel *int
	MaxDepth        *int
	NumWorkers      *int
	Seed            *int64
}

// Apply returns a copy of c with every set field of o applied
func (c SamplingConfig) Apply(o SamplingOverrides) SamplingConfig {
	if o.SamplesPerPixel != nil {
		c.SamplesPerPixel = *o.SamplesPerPixel
	}
	if o.MaxDepth != nil {
		c.MaxDepth = *o.MaxDepth
	}
	if o.NumWorkers != nil {
		c.NumWorkers = *o.NumWorkers
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	return c
}

// ToneMapping selects the exposure curve applied to linear radiance before output
type ToneMapping struct {
	Reinhard bool // c/(1+c) per channel
	Gamma    bool // c^(1/2.2) per channel
}

// DefaultToneMapping enables both Reinhard and gamma encoding
func DefaultToneMapping() ToneMapping {
	return ToneMapping{Reinhard: true, Gamma: true}
}

// Gamma is the display gamma used for encoding
const Gamma = 2.2

// Apply maps linear radiance to a display value in [0,1]
func (tm ToneMapping) Apply(c core.Vec3) core.Vec3 {
	if tm.Reinhard {
		c = c.Reinhard()
	}
	c = c.Clamp(0.0, 1.0)
	if tm.Gamma {
		c = c.GammaCorrect(Gamma)
	}
	return c
}
