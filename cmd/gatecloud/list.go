package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatecloud/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available variants and levels",
	Long:  `Shows every registered variant and the levels from the active config.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Levels:")
	for i, name := range levelNames() {
		fmt.Printf("  %d  %s\n", i+1, name)
	}

	fmt.Println()
	fmt.Println("Run 'gatecloud play <id> --level <n>' to play.")
}
