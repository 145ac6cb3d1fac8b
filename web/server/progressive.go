package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// ProgressUpdate represents a single progressive update sent via SSE
type ProgressUpdate struct {
	PassNumber  int    `json:"passNumber"`
	TotalPasses int    `json:"totalPasses"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MaxSamples     int     `json:"maxSamples"`
	Workers        int     `json:"workers"`
}

// handleRenderProgressive streams one "progress" event per pass, then a
// "complete" event. Failures after the stream has started are sent as "error"
// events. The passes stop when the client disconnects.
func (s *Server) handleRenderProgressive(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	maxPasses, err := parseIntParam(c.QueryParams(), "maxPasses", renderer.DefaultProgressiveConfig().MaxPasses)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	sc, err := scene.LookupID(req.Scene, renderer.CameraConfig{Width: req.Width})
	if err != nil {
		return jsonError(c, lookupStatus(err), err)
	}
	sc.SamplingConfig = sc.SamplingConfig.Apply(req.samplingOverrides())

	rt, err := sc.NewRaytracer()
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, 64)
	rt.SetLogger(NewWebLogger(renderID, consoleChan))
	defer s.console.Drain(consoleChan)

	setSSEHeaders(c)

	config := renderer.DefaultProgressiveConfig()
	config.MaxPasses = maxPasses

	start := time.Now()
	passes, errs := rt.RenderProgressive(c.Request().Context(), config)
	for result := range passes {
		update, err := progressUpdate(result, start)
		if err != nil {
			return sendSSEEvent(c, "error", err.Error())
		}
		data, err := json.Marshal(update)
		if err != nil {
			return sendSSEEvent(c, "error", err.Error())
		}
		if err := sendSSEEvent(c, "progress", string(data)); err != nil {
			return err
		}
	}
	if err := <-errs; err != nil {
		return sendSSEEvent(c, "error", fmt.Sprintf("render error: %v", err))
	}

	return sendSSEEvent(c, "complete", "Rendering completed")
}

func progressUpdate(result renderer.PassResult, start time.Time) (ProgressUpdate, error) {
	imageData, err := imageToBase64PNG(result.Image)
	if err != nil {
		return ProgressUpdate{}, fmt.Errorf("failed to encode image: %w", err)
	}

	return ProgressUpdate{
		PassNumber:  result.PassNumber,
		TotalPasses: result.TotalPasses,
		ImageData:   imageData,
		Stats: Stats{
			TotalPixels:    result.Stats.TotalPixels,
			TotalSamples:   result.Stats.TotalSamples,
			AverageSamples: result.Stats.AverageSamples,
			MaxSamples:     result.Stats.MaxSamples,
			Workers:        result.Stats.Workers,
		},
		IsComplete: result.IsLast,
		ElapsedMs:  time.Since(start).Milliseconds(),
	}, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func setSSEHeaders(c echo.Context) {
	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
}

// sendSSEEvent writes one event and flushes it to the client
func sendSSEEvent(c echo.Context, event, data string) error {
	if _, err := fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	c.Response().Flush()
	return nil
}
