package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-biker/internal/platform/tui"
	"github.com/vovakirdan/tui-biker/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a ride mode from a menu",
	Long: `Start biker in interactive menu mode.

After a ride ends you return to the menu to ride again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start the ride
  Tab          - High scores
  Q            - Quit

Examples:
  biker menu
  biker menu --fps 30
  biker menu --backend sqlite --scores ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.close()

	store := e.openStore()
	defer store.Close()

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if result.GameID == "" {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		if err := tui.Run(game, cfg, tui.Options{
			Store:      store,
			Logger:     e.logger,
			PlayerName: e.cfg.Session.PlayerName,
		}); err != nil {
			return err
		}
	}
}
