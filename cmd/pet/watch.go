package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/platform/tui"
	"github.com/vovakirdan/tui-pet/internal/sim"
	"github.com/vovakirdan/tui-pet/internal/skin"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

var (
	flagSkin        string
	flagTemperament string
	flagConfig      string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the pet in the current terminal",
	Long: `Run the pet in the current terminal window.

Controls:
  r          - Reset the pet to the center of the floor
  s          - Toggle the stats HUD
  q/Ctrl+C   - Quit

Temperament presets:
  calm   - Rarely jumps, gentle hops
  normal - Config values as-is
  hyper  - Jumps often and hard

Examples:
  pet watch
  pet watch --skin cat
  pet watch --temperament hyper --seed 42
  pet watch --config ./my-pet.yaml`,
	Args: cobra.NoArgs,
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagSkin, "skin", "blob", "Pet skin (see 'pet skins')")
	watchCmd.Flags().StringVar(&flagTemperament, "temperament", "normal", "Behavior preset: calm, normal, hyper")
	watchCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pet config YAML")
}

func runWatch(cmd *cobra.Command, args []string) {
	if !skin.Exists(flagSkin) {
		fmt.Fprintf(os.Stderr, "Error: unknown skin %q\n", flagSkin)
		fmt.Fprintln(os.Stderr, "Run 'pet skins' to see available skins.")
		os.Exit(1)
	}

	sk, err := skin.Get(flagSkin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	petCfg, err := config.LoadPet(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyTemperament(&petCfg, config.Temperament(flagTemperament))

	// Get terminal size early so the pet starts on the actual floor
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	vw, vh := tui.ScenePx(cfg)
	simulator := sim.New(petCfg, vw, vh, sim.WithRand(sim.NewSeededRand(cfg.Seed)))

	// Open activity storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open activity database: %v\n", err)
		// Continue without storage - the pet still works
		store = nil
	}

	runErr := tui.Run(simulator, sk, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running pet: %v\n", runErr)
		os.Exit(1)
	}
}
