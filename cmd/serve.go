package cmd

import (
	"github.com/df07/go-pathtracer/web/server"
	"github.com/urfave/cli"
)

// Serve the render API over HTTP.
func Serve(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	port := ctx.Int("port")
	logger.Noticef("visit http://localhost:%d/api/scenes to list scenes", port)
	return server.NewServer(port).Start()
}
