package server

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

const defaultScene = "cornell"

// Inclusive ranges accepted for render request parameters
var requestLimits = map[string]Limit{
	"width":           {Min: 16, Max: 2000},
	"samplesPerPixel": {Min: 1, Max: 10000},
	"maxDepth":        {Min: 0, Max: 1000},
	"maxPasses":       {Min: 1, Max: 100},
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string // Scene ID, built-in or "json:<name>"
	Width           int    // 0 keeps the scene's width
	SamplesPerPixel int
	MaxDepth        *int   // nil keeps the scene's depth
	Seed            *int64 // nil keeps the scene's seed
}

// samplingOverrides returns the sampling settings the request asks for
func (r *RenderRequest) samplingOverrides() renderer.SamplingOverrides {
	return renderer.SamplingOverrides{
		SamplesPerPixel: &r.SamplesPerPixel,
		MaxDepth:        r.MaxDepth,
		Seed:            r.Seed,
	}
}

// handleRender traces one frame and answers with the PNG. Render statistics are
// reported in X-Render-* headers.
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	sc, err := scene.LookupID(req.Scene, renderer.CameraConfig{Width: req.Width})
	if err != nil {
		return jsonError(c, lookupStatus(err), err)
	}
	sc.SamplingConfig = sc.SamplingConfig.Apply(req.samplingOverrides())

	if w, h := sc.CameraConfig.Width, sc.CameraConfig.Height(); w*h > 800*600 && sc.SamplingConfig.SamplesPerPixel > 100 {
		logger.Warningf("large render %dx%d at %d spp may be slow", w, h, sc.SamplingConfig.SamplesPerPixel)
	}

	rt, err := sc.NewRaytracer()
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, 16)
	rt.SetLogger(NewWebLogger(renderID, consoleChan))

	img, stats, err := rt.RenderImage(c.Request().Context())
	s.console.Drain(consoleChan)
	if err != nil {
		return jsonError(c, http.StatusServiceUnavailable, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return jsonError(c, http.StatusInternalServerError, err)
	}

	header := c.Response().Header()
	header.Set("X-Render-Id", renderID)
	header.Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	header.Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// parseRenderRequest parses and validates the query parameters of a render request
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "samplesPerPixel", 16); err != nil {
		return nil, err
	}
	if values.Get("maxDepth") != "" {
		depth, err := parseIntParam(values, "maxDepth", 0)
		if err != nil {
			return nil, err
		}
		req.MaxDepth = &depth
	}
	if values.Get("seed") != "" {
		seed, err := strconv.ParseInt(values.Get("seed"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %s", values.Get("seed"))
		}
		req.Seed = &seed
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query, checked against requestLimits
func parseIntParam(values url.Values, key string, defaultValue int) (int, error) {
	value := values.Get(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	if limit, ok := requestLimits[key]; ok && (parsed < limit.Min || parsed > limit.Max) {
		return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, limit.Min, limit.Max, parsed)
	}
	return parsed, nil
}
