package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/world/levels/formats"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows the levels in play order with their size and objects.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	lvls, err := loadLevels()
	if err != nil {
		return err
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-7s  %-7s  %-7s  %s\n", "#", maxIDLen, "ID", "Size", "Pickups", "Hazards", "Name")
	fmt.Printf("  %-3s  %-*s  %-7s  %-7s  %-7s  %s\n", "-", maxIDLen, "--", "----", "-------", "-------", "----")

	for i, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-3d  %-*s  %-7s  %-7d  %-7d  %s\n",
			i+1, maxIDLen, l.ID, size,
			l.Count(formats.EntityPickup), l.Count(formats.EntityHazard), l.Name)
		if hint := l.Metadata["hint"]; hint != "" {
			fmt.Printf("  %-3s  %-*s  %s\n", "", maxIDLen, "", hint)
		}
	}

	fmt.Println()
	fmt.Println("Run 'maze play --level <#>' to start at a level.")
	return nil
}
