package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplerFactory creates the random source used for one row
type SamplerFactory func(row int) core.Sampler

// Raytracer handles the rendering process
type Raytracer struct {
	camera       *Camera
	integrator   integrator.Integrator
	config       SamplingConfig
	toneMapping  ToneMapping
	flipVertical bool
	newSampler   SamplerFactory
	logger       core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(camera *Camera, integrator integrator.Integrator, config SamplingConfig) *Raytracer {
	rt := &Raytracer{
		camera:      camera,
		integrator:  integrator,
		config:      config,
		toneMapping: DefaultToneMapping(),
		logger:      core.NopLogger{},
	}
	rt.newSampler = rt.seededSampler
	return rt
}

// SetToneMapping selects the curve applied before pixels reach the sink
func (rt *Raytracer) SetToneMapping(tm ToneMapping) {
	rt.toneMapping = tm
}

// SetFlipVertical emits rows bottom-to-top instead of top-to-bottom
func (rt *Raytracer) SetFlipVertical(flip bool) {
	rt.flipVertical = flip
}

// SetSamplerFactory replaces the per-row random source
func (rt *Raytracer) SetSamplerFactory(factory SamplerFactory) {
	rt.newSampler = factory
}

// SetLogger sets the logger for progress output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Rows are seeded independently so the image does not depend on scheduling
func (rt *Raytracer) seededSampler(row int) core.Sampler {
	return core.NewSeededSampler(rt.config.Seed + int64(row))
}

// RenderRow accumulates SamplesPerPixel samples into each pixel of row.
// pixels must hold one slot per image column.
func (rt *Raytracer) RenderRow(row int, pixels []PixelStats) RenderStats {
	return rt.renderRowSamples(row, pixels, rt.config.SamplesPerPixel, rt.newSampler(row))
}

// renderRowSamples adds samples more samples to each pixel of row, drawing
// from sampler. A row's sampler may be reused across progressive passes.
func (rt *Raytracer) renderRowSamples(row int, pixels []PixelStats, samples int, sampler core.Sampler) RenderStats {
	for i := range pixels {
		for s := 0; s < samples; s++ {
			ray := rt.camera.GetRay(i, row, sampler)
			pixels[i].AddSample(rt.integrator.RayColor(ray, rt.config.MaxDepth, sampler))
		}
	}

	return RenderStats{
		TotalPixels:    len(pixels),
		TotalSamples:   len(pixels) * samples,
		AverageSamples: float64(samples),
		MaxSamples:     samples,
		Rows:           1,
	}
}

// tracePass adds samples per pixel to every row of frame on a pool of row
// workers. Row r draws from samplers[r].
func (rt *Raytracer) tracePass(ctx context.Context, frame []PixelStats, samplers []core.Sampler, samples int) (RenderStats, error) {
	width, height := rt.camera.Width(), rt.camera.Height()

	pool := NewWorkerPool(rt, height, rt.config.NumWorkers)
	pool.Start(ctx)
	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{
			Row:     row,
			Pixels:  frame[row*width : (row+1)*width],
			Samples: samples,
			Sampler: samplers[row],
		})
	}
	pool.Stop()

	stats := RenderStats{MaxSamples: samples, Workers: pool.GetNumWorkers()}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		stats.Add(result.Stats)
	}

	if renderErr != nil {
		return stats, fmt.Errorf("render interrupted after %d of %d rows: %w", stats.Rows, height, renderErr)
	}
	return stats, nil
}

// rowSamplers creates the random source of every row
func (rt *Raytracer) rowSamplers() []core.Sampler {
	samplers := make([]core.Sampler, rt.camera.Height())
	for row := range samplers {
		samplers[row] = rt.newSampler(row)
	}
	return samplers
}

// emit tone maps frame and hands every pixel to sink in raster order
func (rt *Raytracer) emit(frame []PixelStats, sink Sink) {
	width, height := rt.camera.Width(), rt.camera.Height()
	for n := 0; n < height; n++ {
		row := n
		if rt.flipVertical {
			row = height - 1 - n
		}
		for x := 0; x < width; x++ {
			sink.Set(x, row, rt.toneMapping.Apply(frame[row*width+x].GetColor()))
		}
	}
}

// Render traces the whole frame on a pool of row workers, then tone maps every
// pixel and hands it to sink in raster order. If ctx is cancelled the sink
// receives nothing and ctx's error is returned.
func (rt *Raytracer) Render(ctx context.Context, sink Sink) (RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return RenderStats{}, err
	}

	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	frame := make([]PixelStats, width*height)

	stats, err := rt.tracePass(ctx, frame, rt.rowSamplers(), rt.config.SamplesPerPixel)
	stats.Duration = time.Since(start)
	if err != nil {
		return stats, err
	}

	rt.emit(frame, sink)

	rt.logger.Printf("Rendered %dx%d, %d spp, %d workers in %v (%.0f samples/s)\n",
		width, height, rt.config.SamplesPerPixel, stats.Workers, stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond())
	return stats, nil
}

// RenderImage renders the frame into a new RGBA image
func (rt *Raytracer) RenderImage(ctx context.Context) (*image.RGBA, RenderStats, error) {
	sink := NewImageSink(rt.camera.Width(), rt.camera.Height())
	stats, err := rt.Render(ctx, sink)
	if err != nil {
		return nil, stats, err
	}
	return sink.Image(), stats, nil
}
