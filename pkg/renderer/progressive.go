package renderer

import (
	"context"
	"fmt"
	"image"
	"time"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	InitialSamples int // Samples per pixel of the first, preview pass
	MaxPasses      int // Maximum number of passes
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		InitialSamples: 1,
		MaxPasses:      7,
	}
}

// Validate checks the config for values that cannot schedule passes
func (c ProgressiveConfig) Validate() error {
	if c.InitialSamples <= 0 {
		return fmt.Errorf("%w: initial samples must be positive, got %d", ErrInvalidConfig, c.InitialSamples)
	}
	if c.MaxPasses <= 0 {
		return fmt.Errorf("%w: pass count must be positive, got %d", ErrInvalidConfig, c.MaxPasses)
	}
	return nil
}

// Schedule returns the cumulative samples per pixel reached after each pass.
// The first pass is a quick preview, the remaining samples are split evenly
// over the remaining passes and the last entry is always total. Passes that
// would add no samples are dropped.
func (c ProgressiveConfig) Schedule(total int) []int {
	if c.MaxPasses == 1 || c.InitialSamples >= total {
		return []int{total}
	}

	schedule := []int{c.InitialSamples}
	samplesPerPass := (total - c.InitialSamples) / (c.MaxPasses - 1)
	for pass := 2; pass < c.MaxPasses; pass++ {
		target := c.InitialSamples + (pass-1)*samplesPerPass
		if target > schedule[len(schedule)-1] {
			schedule = append(schedule, target)
		}
	}
	if schedule[len(schedule)-1] < total {
		schedule = append(schedule, total)
	}
	return schedule
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber  int
	TotalPasses int
	Image       *image.RGBA
	Stats       RenderStats // Cumulative over every pass so far
	IsLast      bool
}

// RenderProgressive renders the frame in passes of increasing sample count and
// sends a tone mapped image after each one. Every pass adds to the same
// accumulation buffer and each row keeps its random source across passes, so
// the result does not depend on the worker count. Both channels are closed when
// rendering ends; at most one error is sent.
func (rt *Raytracer) RenderProgressive(ctx context.Context, config ProgressiveConfig) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		if err := rt.config.Validate(); err != nil {
			errChan <- err
			return
		}
		if err := config.Validate(); err != nil {
			errChan <- err
			return
		}

		schedule := config.Schedule(rt.config.SamplesPerPixel)
		width, height := rt.camera.Width(), rt.camera.Height()
		frame := make([]PixelStats, width*height)
		samplers := rt.rowSamplers()

		rt.logger.Printf("Starting progressive rendering with %d passes...\n", len(schedule))

		start := time.Now()
		total := RenderStats{TotalPixels: width * height, Rows: height, MaxSamples: rt.config.SamplesPerPixel}
		done := 0
		for i, target := range schedule {
			passStart := time.Now()
			stats, err := rt.tracePass(ctx, frame, samplers, target-done)
			if err != nil {
				rt.logger.Printf("Rendering cancelled in pass %d\n", i+1)
				errChan <- err
				return
			}
			done = target

			total.TotalSamples += stats.TotalSamples
			total.AverageSamples = float64(done)
			total.Workers = stats.Workers
			total.Duration = time.Since(start)

			rt.logger.Printf("Pass %d completed in %v (%d samples/pixel)\n",
				i+1, time.Since(passStart).Round(time.Millisecond), done)

			sink := NewImageSink(width, height)
			rt.emit(frame, sink)

			result := PassResult{
				PassNumber:  i + 1,
				TotalPasses: len(schedule),
				Image:       sink.Image(),
				Stats:       total,
				IsLast:      i == len(schedule)-1,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}
