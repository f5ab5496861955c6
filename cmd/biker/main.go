// biker is an endless side-scrolling bike ride in the terminal.
//
// Usage:
//
//	biker list                 - List ride modes
//	biker play [mode]          - Ride (default: biker)
//	biker menu                 - Pick a mode interactively
//	biker scores               - Show the high-score tables
//	biker import <file>        - Merge a legacy highscore.json into the ledger
//	biker config               - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible terrain
//	--scores <path>      - Score file (default: highscore.json next to the binary)
//	--backend <kind>     - Score backend: json or sqlite
//	--config <path>      - Custom biker.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--name <player>      - Name stored with new scores
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagScores     string
	flagBackend    string
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "biker",
	Short: "Biker - an endless bike ride in your terminal",
	Long: `Biker is an endless side-scrolling cycling game. Ride over a hilly
landscape, collect items and rack up energy before the clock runs out.

Available commands:
  list     - Show the ride modes
  play     - Start a ride directly
  menu     - Interactive mode picker
  scores   - View the high-score tables
  import   - Import a legacy highscore.json
  config   - Print the default configuration

Examples:
  biker play
  biker play biker_auto --seed 42
  biker menu --difficulty hard
  biker scores --window monthly`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagScores, "scores", "", "Path to the score file (overrides config)")
	pf.StringVar(&flagBackend, "backend", "", "Score backend: json or sqlite (overrides config)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom biker.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagName, "name", "", "Player name stored with new scores")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
}
