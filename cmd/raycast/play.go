package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/engine"
	"github.com/vovakirdan/tui-raycast/internal/platform/tui"
	"github.com/vovakirdan/tui-raycast/internal/storage"
)

var (
	flagNoHUD bool
	flagNudge int
	flagMenu  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Walk the map in the terminal",
	Long: `Render the raycaster in the terminal with truecolor half-block cells.
Each terminal column is one ray; each row shows two pixel rows.

Controls:
  W/Up       - Move forward
  S/Down     - Move backward
  Mouse      - Look left/right
  A/D        - Look left/right (keyboard)
  H          - Toggle status line
  Ctrl+S     - Save a PNG screenshot to ~/.raycast/screenshots
  Q/Esc      - Quit (back to the preset picker with --menu)

Examples:
  raycast play
  raycast play --menu
  raycast play --preset fog
  raycast play --fps 20
  raycast play --config ./maze.yaml --log ./raycast.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoHUD, "no-hud", false, "Start with the status line hidden")
	playCmd.Flags().IntVar(&flagNudge, "nudge", 40, "Look step in pixels for A/D")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick a view preset before each run")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, loopOpts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to --log or nowhere
	logger, closeLog, err := newLogger("raycast", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	loopOpts.Logger = logger

	// Get terminal size early; the first resize message corrects it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	loopOpts.Dims = core.Dims{W: width, H: core.Max(height-1, 1) * 2}

	opts := tui.DefaultOptions()
	opts.TickRate = cfg.Screen.TickRate
	opts.ShowHUD = !flagNoHUD
	opts.Nudge = flagNudge

	logger.Info("starting terminal session", "cols", width, "rows", height, "fps", opts.TickRate)

	if flagMenu {
		record := func(stats engine.Stats) {
			saveRun(storage.PlatformTerminal, stats, logger)
		}
		if err := tui.RunSession(loopOpts, opts, width, height, record); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := tui.Run(loopOpts, opts)
	saveRun(storage.PlatformTerminal, stats, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSummary(stats)
}
