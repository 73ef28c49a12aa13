package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/platform/window"
	"github.com/vovakirdan/tui-raycast/internal/storage"
)

var (
	flagScale     int
	flagNoCapture bool
	flagWidth     int
	flagHeight    int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Walk the map in a desktop window",
	Long: `Open a window and render the raycaster at the configured resolution.
The mouse is captured; move it horizontally to look around.

Controls:
  W/Up       - Move forward
  S/Down     - Move backward
  Mouse      - Look left/right
  Q/Esc      - Quit

Examples:
  raycast window
  raycast window --scale 2 --width 320 --height 200
  raycast window --no-capture`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per frame pixel")
	windowCmd.Flags().BoolVar(&flagNoCapture, "no-capture", false, "Do not capture the mouse cursor")
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Frame width override (0 = from config)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Frame height override (0 = from config)")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, loopOpts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("raycast", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	loopOpts.Logger = logger

	if flagWidth > 0 || flagHeight > 0 {
		d := loopOpts.Dims
		if flagWidth > 0 {
			d.W = flagWidth
		}
		if flagHeight > 0 {
			d.H = flagHeight
		}
		loopOpts.Dims = d
	}

	opts := window.DefaultOptions()
	opts.TickRate = cfg.Screen.TickRate
	opts.Scale = flagScale
	opts.CaptureCursor = !flagNoCapture

	logger.Info("opening window", "width", loopOpts.Dims.W, "height", loopOpts.Dims.H, "fps", opts.TickRate)
	stats, err := window.Run(loopOpts, opts)
	saveRun(storage.PlatformWindow, stats, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSummary(stats)
}
