package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cgmb/ray/renderer"
	"github.com/cgmb/ray/scene/reader"
	"github.com/cgmb/ray/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Process exit codes.
const (
	ExitFailSave = 1
	ExitFailLoad = 2
	ExitBadArgs  = 3
)

// Load the scene, render it and save the frame as a PNG.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 0 {
		return cli.NewExitError(
			fmt.Sprintf("unexpected argument: %s", ctx.Args().First()), ExitBadArgs)
	}

	sceneFile := ctx.String("scene")
	sc, err := reader.ReadScene(sceneFile)
	if err != nil {
		return cli.NewExitError(
			fmt.Sprintf("failed to load %s\nencountered error:\n%v", sceneFile, err),
			ExitFailLoad)
	}

	var photons *tracer.PhotonMap
	if sc.PhotonMappingEnabled {
		logger.Notice("shooting photons")
		start := time.Now()
		photons = tracer.BuildPhotonMap(sc)
		logger.Noticef("stored %d caustic photons in %d ms",
			photons.Size(), time.Since(start).Nanoseconds()/1000000)
	}

	r, err := renderer.New(sc, photons, renderer.Options{
		Workers:  ctx.Int("threads"),
		Progress: ctx.Bool("progress"),
	})
	if err != nil {
		return cli.NewExitError(err.Error(), ExitBadArgs)
	}

	img, err := r.Render()
	if err != nil {
		return cli.NewExitError(err.Error(), ExitFailSave)
	}
	img.ClampColors()

	out := ctx.String("output")
	if err = img.SavePNG(out); err != nil {
		return cli.NewExitError(
			fmt.Sprintf("failed to save %s: %v", out, err), ExitFailSave)
	}
	logger.Noticef("wrote frame to %s", out)

	displayFrameStats(r.Stats())
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Id),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Infof("frame statistics\n%s", buf.String())
}
