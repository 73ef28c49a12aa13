package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/engine"
	"github.com/vovakirdan/tui-raycast/internal/platform/headless"
)

var (
	flagOutput   string
	flagForward  int
	flagBackward int
	flagTurn     int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one frame to a PNG file",
	Long: `Run the frame loop without a display and save the final frame as PNG.

The scripted input runs in this order: one turn tick (--turn pixels of
cursor offset), --forward ticks holding W, --backward ticks holding S,
then one idle tick that renders the saved frame.

Examples:
  raycast snapshot
  raycast snapshot --turn 800 --forward 20 -o corridor.png
  raycast snapshot --config ./maze.yaml --output maze.png`,
	Args: cobra.NoArgs,
	Run:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&flagOutput, "output", "o", "raycast.png", "Output PNG path")
	snapshotCmd.Flags().IntVar(&flagForward, "forward", 0, "Ticks to walk forward")
	snapshotCmd.Flags().IntVar(&flagBackward, "backward", 0, "Ticks to walk backward")
	snapshotCmd.Flags().IntVar(&flagTurn, "turn", 0, "Cursor offset in pixels for one turn tick")
}

// snapshotScript builds the scripted input for a screen w pixels wide.
func snapshotScript(w int) *headless.Script {
	s := headless.NewScript(w)
	if flagTurn != 0 {
		s.Turn(flagTurn)
	}
	return s.Forward(flagForward).Backward(flagBackward).Idle(1)
}

func runSnapshot(_ *cobra.Command, _ []string) {
	_, loopOpts, err := loadOptions()
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

	script := snapshotScript(loopOpts.Dims.W)
	platform := headless.New(loopOpts.Dims.W, script.Inputs())
	loop := engine.New(platform, loopOpts)

	if err := loop.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := headless.SavePNG(flagOutput, platform.Last()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d) at %s\n",
		flagOutput, loopOpts.Dims.W, loopOpts.Dims.H, loop.Player())
}
