package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderOptions collects the render command flags
type RenderOptions struct {
	Scene       string
	Out         string // Output PNG path, empty = output/<scene>/render_<timestamp>.png
	Width       int    // 0 keeps the scene's width
	// Only set fields replace the scene's settings
	Sampling    renderer.SamplingOverrides
	ToneMapping renderer.ToneMapping
	Flip        bool
}

// Render a single frame of a scene to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err := Render(sigCtx, renderOptions(ctx))
	return err
}

// renderOptions reads the render command flags. Sampling flags that were not
// given on the command line stay nil.
func renderOptions(ctx *cli.Context) RenderOptions {
	opts := RenderOptions{
		Scene: ctx.String("scene"),
		Out:   ctx.String("out"),
		Width: ctx.Int("width"),
		Sampling: renderer.SamplingOverrides{
			SamplesPerPixel: intFlag(ctx, "spp"),
			MaxDepth:        intFlag(ctx, "depth"),
			NumWorkers:      intFlag(ctx, "workers"),
		},
		ToneMapping: renderer.ToneMapping{
			Reinhard: !ctx.Bool("no-reinhard"),
			Gamma:    !ctx.Bool("no-gamma"),
		},
		Flip: ctx.Bool("flip"),
	}

	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		opts.Sampling.Seed = &seed
	}
	return opts
}

// intFlag returns the flag value, or nil when it was not given on the command line
func intFlag(ctx *cli.Context, name string) *int {
	if !ctx.IsSet(name) {
		return nil
	}
	v := ctx.Int(name)
	return &v
}

// Render looks up the scene, traces it and writes the PNG. It returns the path written.
func Render(ctx context.Context, opts RenderOptions) (string, error) {
	s, err := scene.Lookup(opts.Scene, renderer.CameraConfig{Width: opts.Width})
	if err != nil {
		return "", err
	}
	s.SamplingConfig = s.SamplingConfig.Apply(opts.Sampling)

	rt, err := s.NewRaytracer()
	if err != nil {
		return "", err
	}
	rt.SetToneMapping(opts.ToneMapping)
	rt.SetFlipVertical(opts.Flip)
	rt.SetLogger(log.AsPrintf(logger))

	logger.Infof("rendering scene %q (%d primitives)", s.Name, s.GetPrimitiveCount())

	img, stats, err := rt.RenderImage(ctx)
	if err != nil {
		return "", err
	}

	out := opts.Out
	if out == "" {
		out = outputPath(opts.Scene, time.Now())
	}
	if err := savePNG(out, img); err != nil {
		return "", err
	}

	logger.Notice(formatRenderStats(s, stats))
	logger.Noticef("render saved as %s", out)
	return out, nil
}

// outputPath returns output/<scene>/render_<timestamp>.png
func outputPath(sceneName string, now time.Time) string {
	name := strings.TrimPrefix(sceneName, "json:")
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func formatRenderStats(s *scene.Scene, stats renderer.RenderStats) string {
	var buf bytes.Buffer
	bvh := s.GetBVHStats()

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Stat", "Value"})
	table.Append([]string{"Scene", s.Name})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.CameraConfig.Width, s.CameraConfig.Height())})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", s.SamplingConfig.SamplesPerPixel)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.SamplingConfig.MaxDepth)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", stats.Workers)})
	table.Append([]string{"Total samples", fmt.Sprintf("%d", stats.TotalSamples)})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", s.GetPrimitiveCount())})
	table.Append([]string{"BVH nodes", fmt.Sprintf("%d", bvh.Nodes)})
	table.Append([]string{"BVH depth", fmt.Sprintf("%d", bvh.MaxDepth)})
	table.Append([]string{"Samples/sec", fmt.Sprintf("%.0f", stats.SamplesPerSecond())})
	table.SetFooter([]string{"Render time", stats.Duration.Round(time.Millisecond).String()})
	table.Render()

	return "\n" + buf.String()
}
