package renderer

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestProgressiveSchedule(t *testing.T) {
	tests := []struct {
		name     string
		config   ProgressiveConfig
		total    int
		expected []int
	}{
		// (50-1)/6 = 8 samples per middle pass, the last pass takes the remainder
		{"default", DefaultProgressiveConfig(), 50, []int{1, 9, 17, 25, 33, 41, 50}},
		{"single pass", ProgressiveConfig{InitialSamples: 1, MaxPasses: 1}, 50, []int{50}},
		{"empty passes dropped", ProgressiveConfig{InitialSamples: 1, MaxPasses: 7}, 4, []int{1, 4}},
		{"preview covers everything", ProgressiveConfig{InitialSamples: 8, MaxPasses: 3}, 4, []int{4}},
		{"even split", ProgressiveConfig{InitialSamples: 2, MaxPasses: 3}, 10, []int{2, 6, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.Schedule(tt.total); !slices.Equal(got, tt.expected) {
				t.Errorf("Expected schedule %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestProgressiveConfig(t *testing.T) {
	config := DefaultProgressiveConfig()
	if config.InitialSamples != 1 {
		t.Errorf("Expected default initial samples 1, got %d", config.InitialSamples)
	}
	if config.MaxPasses != 7 {
		t.Errorf("Expected default max passes 7, got %d", config.MaxPasses)
	}

	for _, bad := range []ProgressiveConfig{{InitialSamples: 0, MaxPasses: 3}, {InitialSamples: 1, MaxPasses: 0}} {
		if err := bad.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig for %+v, got %v", bad, err)
		}
	}
}

func collectPasses(passes <-chan PassResult, errs <-chan error) ([]PassResult, error) {
	var results []PassResult
	for result := range passes {
		results = append(results, result)
	}
	return results, <-errs
}

func TestRenderProgressive(t *testing.T) {
	rt, camera, _ := unitSphereRaytracer(8, SamplingConfig{SamplesPerPixel: 6, MaxDepth: 3, NumWorkers: 2, Seed: 5})

	results, err := collectPasses(rt.RenderProgressive(context.Background(), ProgressiveConfig{InitialSamples: 1, MaxPasses: 3}))
	if err != nil {
		t.Fatalf("RenderProgressive failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 passes, got %d", len(results))
	}

	pixels := camera.Width() * camera.Height()
	for i, result := range results {
		expectedSamples := []float64{1, 3, 6}[i]
		if result.PassNumber != i+1 || result.TotalPasses != 3 {
			t.Errorf("Pass %d: unexpected numbering %d/%d", i+1, result.PassNumber, result.TotalPasses)
		}
		if result.IsLast != (i == 2) {
			t.Errorf("Pass %d: IsLast = %v", i+1, result.IsLast)
		}
		if result.Stats.AverageSamples != expectedSamples || result.Stats.TotalSamples != pixels*int(expectedSamples) {
			t.Errorf("Pass %d: unexpected stats %+v", i+1, result.Stats)
		}
		if result.Image.Bounds().Dx() != camera.Width() || result.Image.Bounds().Dy() != camera.Height() {
			t.Errorf("Pass %d: unexpected image size %v", i+1, result.Image.Bounds())
		}
	}
}

func TestRenderProgressive_SamplesEveryPixel(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
		Width: 8, AspectRatio: 2.0, VFov: 90,
	})
	mock := &MockIntegrator{color: core.NewVec3(1, 1, 1)}
	rt := NewRaytracer(camera, mock, SamplingConfig{SamplesPerPixel: 10, MaxDepth: 2, NumWorkers: 3})

	if _, err := collectPasses(rt.RenderProgressive(context.Background(), DefaultProgressiveConfig())); err != nil {
		t.Fatalf("RenderProgressive failed: %v", err)
	}
	if mock.calls != 8*4*10 {
		t.Errorf("Expected %d integrator calls, got %d", 8*4*10, mock.calls)
	}
}

func TestRenderProgressive_DeterministicAcrossWorkerCounts(t *testing.T) {
	render := func(workers int) PassResult {
		rt, _, _ := unitSphereRaytracer(10, SamplingConfig{SamplesPerPixel: 5, MaxDepth: 4, NumWorkers: workers, Seed: 11})
		results, err := collectPasses(rt.RenderProgressive(context.Background(), ProgressiveConfig{InitialSamples: 1, MaxPasses: 3}))
		if err != nil {
			t.Fatalf("RenderProgressive failed: %v", err)
		}
		return results[len(results)-1]
	}

	single := render(1)
	parallel := render(4)
	if !slices.Equal(single.Image.Pix, parallel.Image.Pix) {
		t.Error("Expected identical final images for 1 and 4 workers")
	}
}

func TestRenderProgressive_Errors(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		rt, _, _ := unitSphereRaytracer(8, SamplingConfig{SamplesPerPixel: 4, MaxDepth: 2, NumWorkers: 2})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := collectPasses(rt.RenderProgressive(ctx, DefaultProgressiveConfig()))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Expected no passes, got %d", len(results))
		}
	})

	t.Run("invalid sampling", func(t *testing.T) {
		rt, _, _ := unitSphereRaytracer(8, SamplingConfig{SamplesPerPixel: 0, MaxDepth: 2})
		if _, err := collectPasses(rt.RenderProgressive(context.Background(), DefaultProgressiveConfig())); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("invalid passes", func(t *testing.T) {
		rt, _, _ := unitSphereRaytracer(8, SamplingConfig{SamplesPerPixel: 2, MaxDepth: 2})
		if _, err := collectPasses(rt.RenderProgressive(context.Background(), ProgressiveConfig{InitialSamples: 1})); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}
