package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var logger = log.New("server")

// Server handles web requests for the path tracer
type Server struct {
	port    int
	echo    *echo.Echo
	console *consoleHistory
}

// NewServer creates a new web server with every API route registered
func NewServer(port int) *Server {
	s := &Server{
		port:    port,
		echo:    echo.New(),
		console: newConsoleHistory(200),
	}
	s.echo.HideBanner = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.GET("/api/scene-config", s.handleSceneConfig)
	s.echo.GET("/api/render", s.handleRender)
	s.echo.GET("/api/render/progressive", s.handleRenderProgressive)
	s.echo.GET("/api/inspect", s.handleInspect)
	s.echo.GET("/api/console", s.handleConsole)
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured port until the server fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// errorResponse is the JSON body of every failed API call
type errorResponse struct {
	Error string `json:"error"`
}

func jsonError(c echo.Context, status int, err error) error {
	return c.JSON(status, errorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(c echo.Context) error {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, scenes)
}

// SceneConfig reports the defaults a scene renders with and the accepted request limits
type SceneConfig struct {
	Scene    string           `json:"scene"`
	Defaults SceneDefaults    `json:"defaults"`
	Limits   map[string]Limit `json:"limits"`
}

// SceneDefaults are the camera and sampling settings built into a scene
type SceneDefaults struct {
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	SamplesPerPixel int   `json:"samplesPerPixel"`
	MaxDepth        int   `json:"maxDepth"`
	Seed            int64 `json:"seed"`
}

// Limit is the inclusive range of a render request parameter
type Limit struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (s *Server) handleSceneConfig(c echo.Context) error {
	name := c.QueryParam("scene")
	if name == "" {
		name = defaultScene
	}

	sc, err := scene.LookupID(name)
	if err != nil {
		return jsonError(c, lookupStatus(err), err)
	}

	return c.JSON(http.StatusOK, SceneConfig{
		Scene: name,
		Defaults: SceneDefaults{
			Width:           sc.CameraConfig.Width,
			Height:          sc.CameraConfig.Height(),
			SamplesPerPixel: sc.SamplingConfig.SamplesPerPixel,
			MaxDepth:        sc.SamplingConfig.MaxDepth,
			Seed:            sc.SamplingConfig.Seed,
		},
		Limits: requestLimits,
	})
}

func (s *Server) handleConsole(c echo.Context) error {
	return c.JSON(http.StatusOK, s.console.Messages())
}

// lookupStatus maps scene lookup failures to HTTP status codes
func lookupStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
