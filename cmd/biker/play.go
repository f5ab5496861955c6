package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-biker/internal/platform/tui"
	"github.com/vovakirdan/tui-biker/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start a ride",
	Long: `Start riding in the given mode (default: biker).

Controls:
  Space/Up   - Push the pedals (pedal mode)
  P/Esc      - Pause
  R          - Ride again (after the ride is over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Gentle hills, lighter pedalling
  normal - Hills start at 30% of the rough end
  hard   - Hills start at 70%, more drag
  fixed  - No progression during the ride

Examples:
  biker play
  biker play biker_auto
  biker play --difficulty hard --name Ana
  biker play --config ./my-biker.yaml --backend sqlite`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := "biker"
	if len(args) == 1 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'biker list' to see the ride modes", modeID)
	}

	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.close()

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	store := e.openStore()
	defer store.Close()

	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     e.logger,
		PlayerName: e.cfg.Session.PlayerName,
	})
}
