package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/world"
)

var (
	flagMapX     float64
	flagMapY     float64
	flagMapAngle float64
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the map",
	Long: `Print the configured map as text with the player drawn as an arrow
(v south, > east, ^ north, < west). By default the player is at the
configured start.

Examples:
  raycast map
  raycast map --x 3.5 --y 12.5 --angle 1.57`,
	Args: cobra.NoArgs,
	Run:  runMap,
}

func init() {
	mapCmd.Flags().Float64Var(&flagMapX, "x", -1, "Player x (default: config start)")
	mapCmd.Flags().Float64Var(&flagMapY, "y", -1, "Player y (default: config start)")
	mapCmd.Flags().Float64Var(&flagMapAngle, "angle", 0, "Player heading in radians (0 faces down the map)")
}

func runMap(cmd *cobra.Command, _ []string) {
	_, loopOpts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := loopOpts.Start
	if cmd.Flags().Changed("x") {
		p.X = flagMapX
	}
	if cmd.Flags().Changed("y") {
		p.Y = flagMapY
	}
	if cmd.Flags().Changed("angle") {
		p.Angle = flagMapAngle
	}

	fmt.Println(world.Overview(loopOpts.Grid, p))
	fmt.Println(p)
}
