package main

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte-Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log verbosity: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene, a scene from the scenes directory ("json:<name>")
or a JSON scene file to a PNG image.

Sampling flags that are not given keep the scene's own settings.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "scene id or path to a .json scene file",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "",
					Usage: "image filename for the rendered frame (default output/<scene>/render_<timestamp>.png)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 0,
					Usage: "frame width, the height follows the scene's aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 0,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 0,
					Usage: "max number of ray bounces",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of row workers (0 = one per logical CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "base random seed",
				},
				cli.BoolFlag{
					Name:  "no-reinhard",
					Usage: "disable Reinhard tone mapping",
				},
				cli.BoolFlag{
					Name:  "no-gamma",
					Usage: "disable gamma correction",
				},
				cli.BoolFlag{
					Name:  "flip",
					Usage: "emit rows bottom to top",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the render API over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to listen on",
				},
			},
			Action: cmd.Serve,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
