package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-biker/internal/scores"
)

var (
	flagWindow string
	flagTop    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score tables",
	Long: `Display the best rides of a ranking window.

Windows: daily, monthly, yearly, alltime.

Examples:
  biker scores
  biker scores --window alltime -n 10
  biker scores --backend sqlite --scores ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var importCmd = &cobra.Command{
	Use:   "import <highscore.json>",
	Short: "Merge a legacy score file into the ledger",
	Long: `Reads a score file in any of the known layouts ({"high_score": N},
a flat list of entries, or the windowed document) and appends its entries
to the configured ledger.

Examples:
  biker import ./old/highscore.json
  biker import ./highscore.json --backend sqlite --scores ./scores.db`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	scoresCmd.Flags().StringVarP(&flagWindow, "window", "w", "daily", "Ranking window: daily, monthly, yearly, alltime")
	scoresCmd.Flags().IntVarP(&flagTop, "top", "n", 5, "Number of entries to show (0 = whole table)")
}

func runScores(_ *cobra.Command, _ []string) error {
	window, err := scores.ParseWindow(flagWindow)
	if err != nil {
		return err
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.close()

	store := e.openStore()
	defer store.Close()

	entries := store.Top(window, flagTop)

	color.Yellow("High Scores - %s", window.Title())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No rides recorded yet.")
		fmt.Println()
		fmt.Println("Run 'biker play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-9s  %-6s  %-7s  %s\n", "Rank", "Name", "Energy kJ", "Time", "Power W", "Date")
	fmt.Printf("  %-4s  %-16s  %-9s  %-6s  %-7s  %s\n", "----", "----", "---------", "----", "-------", "----")

	for i, entry := range entries {
		power := "-"
		if entry.AvgPowerW != nil {
			power = fmt.Sprintf("%.0f", *entry.AvgPowerW)
		}
		line := fmt.Sprintf("  %-4d  %-16s  %-9.1f  %d:%02d   %-7s  %s",
			i+1, entry.Name, entry.Score, entry.DurationSec/60, entry.DurationSec%60, power, entry.Date)
		if i == 0 {
			color.Green("%s", line)
		} else {
			fmt.Println(line)
		}
	}

	fmt.Println()
	color.Cyan("Best today: %.1f kJ   All-time best: %.1f kJ", store.BestToday(), store.BestAllTime())
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.close()

	store := e.openStore()
	defer store.Close()

	if !store.Persistent() {
		color.Yellow("Persistence is off, imported scores will not be kept.")
	}

	n, err := store.ImportLegacy(args[0])
	if err != nil {
		return err
	}
	color.Green("Imported %d entries into %s", n, store.Path())
	return nil
}
