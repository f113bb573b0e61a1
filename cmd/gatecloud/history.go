package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
	"github.com/vovakirdan/gatecloud/internal/storage"
)

var (
	flagHistoryGame  string
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded runs",
	Long: `Without arguments, lists the most recent finished runs.
With a run ID, prints the stored snapshot of that run.

Examples:
  gatecloud history
  gatecloud history --game gatecloud_pinball --limit 5
  gatecloud history 6f1c2a9e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryGame, "game", "", "Only show runs of this variant")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showRun(store, args[0])
		return
	}

	runs, err := store.RecentRuns(flagHistoryGame, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-36s  %-17s  %-3s  %-6s  %-4s  %s\n", "ID", "Variant", "Lvl", "Score", "Goal", "Qubits")
	fmt.Printf("  %-36s  %-17s  %-3s  %-6s  %-4s  %s\n", "--", "-------", "---", "-----", "----", "------")
	for _, r := range runs {
		goal := "no"
		if r.TargetMet {
			goal = "yes"
		}
		fmt.Printf("  %-36s  %-17s  %-3d  %-6d  %-4s  %s\n",
			r.ID, r.GameID, r.Level+1, r.Score, goal, strings.Join(r.Labels, " "))
	}
}

func showRun(store *storage.Store, id string) {
	run, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run %q\n", id)
		os.Exit(1)
	}

	fmt.Printf("Run %s (%s, level %d)\n", run.ID, run.GameID, run.Level+1)
	fmt.Printf("Played:  %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Seed:    %d\n", run.Seed)

	if len(run.Snapshot) == 0 {
		fmt.Printf("Score:   %d\n", run.Score)
		return
	}
	snap, err := sim.DecodeSnapshot(run.Snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding snapshot: %v\n", err)
		os.Exit(1)
	}
	printSnapshot(snap)
}

func printSnapshot(s sim.Snapshot) {
	fmt.Printf("Variant: %s\n", s.Variant)
	fmt.Printf("Queue:   %s (%d/%d dropped)\n", strings.Join(s.Queue, " "), s.Spawned, len(s.Queue))
	fmt.Printf("Score:   %d (combo %d)\n", s.Score, s.Combo)
	fmt.Printf("Target:  %s  met: %v\n", s.Target, s.TargetMet())
	for _, z := range s.Zones {
		fmt.Printf("  %-4s %-4s %s\n", z.ID, z.Label, strings.Join(z.Gates, " "))
	}
	fmt.Printf("Dustbin: %s\n", strings.Join(s.Dustbin, " "))
	fmt.Printf("Elapsed: %.1fs\n", float64(s.ElapsedMS)/1000)
}
