package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pet/internal/skin"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List all available skins",
	Long:  `Shows a list of all registered pet skins.`,
	Run:   runSkins,
}

func runSkins(cmd *cobra.Command, args []string) {
	skins := skin.List()

	if len(skins) == 0 {
		fmt.Println("No skins available.")
		return
	}

	fmt.Println("Available skins:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range skins {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print skins
	for _, s := range skins {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pet watch --skin <id>' to use a skin.")
}
