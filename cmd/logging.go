package cmd

import (
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

// setupLogging sets verbosity from --log-level or the v/vv shortcuts, whether
// they were given to the app or, for single-action apps, to the root context.
// v and vv win over --log-level.
func setupLogging(ctx *cli.Context) error {
	name := ctx.GlobalString("log-level")
	if name == "" {
		name = ctx.String("log-level")
	}
	if name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") || ctx.Bool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") || ctx.Bool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}
