package main

import (
	"os"

	"github.com/cgmb/ray/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "ray"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "world.yml",
			Usage: "scene description file",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "output.png",
			Usage: "image filename for the rendered frame",
		},
		cli.IntFlag{
			Name:  "threads, j",
			Value: 1,
			Usage: "number of render workers",
		},
		cli.BoolFlag{
			Name:  "progress",
			Usage: "report render progress from the first worker",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Action = cmd.RenderScene
	app.Commands = []cli.Command{
		{
			Name:  "scene",
			Usage: "describe the scene file format",
			Description: `
Print a reference for the YAML scene description consumed by the render
command, including the material coefficients and texture parameters.`,
			Action: cmd.SceneHelp,
		},
	}

	if err := app.Run(os.Args); err != nil {
		// Exit-coded errors from the actions terminate inside Run.
		// Anything left over is a bad command line that cli has
		// already reported on stderr.
		os.Exit(cmd.ExitBadArgs)
	}
}
