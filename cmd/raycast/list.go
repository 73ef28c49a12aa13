package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List view presets",
	Long: `Shows every view preset. A preset overrides the camera, movement speed
or palette of the loaded configuration; the map is never changed.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(_ *cobra.Command, _ []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	idLen, titleLen := len("ID"), len("Title")
	for _, p := range presets {
		idLen = max(idLen, len(p.ID))
		titleLen = max(titleLen, len(p.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idLen, "ID", titleLen, "Title", "Effect")
	fmt.Printf("  %-*s  %-*s  %s\n", idLen, "--", titleLen, "-----", "------")

	for _, p := range presets {
		fmt.Printf("  %-*s  %-*s  %s\n", idLen, p.ID, titleLen, p.Title, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'raycast play --preset <id>' to use one.")
}
