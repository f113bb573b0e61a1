// gatecloud is a terminal physics game about steering quantum gates into
// qubit zones.
//
// Usage:
//
//	gatecloud list              - List available variants
//	gatecloud play <variant>    - Play a variant
//	gatecloud menu              - Start menu to pick variant and level
//	gatecloud serve             - Start SSH server for remote play
//	gatecloud scores <variant>  - Show high scores
//	gatecloud history           - Show recent runs
//	gatecloud simulate          - Run a session headless
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gatecloud/scores.db)
//	--config <path> - Set game config YAML
//	--debug         - Write engine tracing to ~/.gatecloud/debug.log
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/gatecloud/internal/games/gatecloud"
)

const defaultDBPath = "~/.gatecloud/scores.db"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gatecloud",
	Short: "Gate Cloud - steer quantum gates in your terminal",
	Long: `Gate Cloud drops a queue of quantum gates onto a physics field.
Bend their paths with emitters (or flippers in pinball mode) so they land
in the qubit zones and leave every qubit in the target state.

Available commands:
  list      - Show the available variants
  play      - Play a variant directly
  menu      - Interactive variant and level picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  history   - View recorded runs
  simulate  - Run a session without a terminal UI

Examples:
  gatecloud list
  gatecloud play gatecloud
  gatecloud play gatecloud_pinball --level 2
  gatecloud menu
  gatecloud serve --ssh :2222
  gatecloud simulate --seed 42 --pulse 30`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
}

func init() {
	// .env may set GATECLOUD_DB and GATECLOUD_CONFIG
	_ = godotenv.Load()

	dbPath := defaultDBPath
	if v := os.Getenv("GATECLOUD_DB"); v != "" {
		dbPath = v
	}

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dbPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("GATECLOUD_CONFIG"), "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simulateCmd)
}
