package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "framecap"
	app.Description = "Paces a simulated game loop and reports frame timings"
	app.Usage = "framecap [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.Float64Flag{
			Name:  "fps",
			Usage: "Target frames per second, (0..1000], out of range values fall back to 15",
			Value: 60,
		},
		cli.BoolFlag{
			Name:  "vsync",
			Usage: "Let display pace the loop, timer only measures",
		},
		cli.BoolTFlag{
			Name:  "system-cap",
			Usage: "Always wait with OS sleep, set to false to spin short waits",
		},
		cli.Float64Flag{
			Name:  "min-delay",
			Usage: "Waits shorter than this (ms) are spun when system cap is off",
			Value: 16,
		},
		cli.IntFlag{
			Name:  "average",
			Usage: "Number of frames in rolling FPS average",
			Value: 5,
		},
		cli.Uint64Flag{
			Name:  "frames",
			Usage: "Stop after N frames (0 = run until interrupted)",
			Value: 0,
		},
		cli.DurationFlag{
			Name:  "workload",
			Usage: "Simulated work per frame",
			Value: 0,
		},
		cli.Uint64Flag{
			Name:  "report-every",
			Usage: "Log frame stats every N frames in headless mode (0 = summary only)",
			Value: 60,
		},
		cli.StringFlag{
			Name:  "clock",
			Usage: "Time source: monotonic or sdl (sdl needs -tags sdl2)",
			Value: clockMonotonic,
		},
		cli.BoolFlag{
			Name:  "hud",
			Usage: "Show live stats in terminal instead of logging",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "Write logs to file (HUD mode discards logs otherwise)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runFramecap

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running framecap", "error", err)
		os.Exit(1)
	}
}

func runFramecap(c *cli.Context) error {
	cfg := configFromContext(c)

	closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg)
}
