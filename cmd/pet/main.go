// pet is a desktop pet that lives in your terminal.
//
// Usage:
//
//	pet watch               - Watch the pet in the current terminal
//	pet serve               - Start SSH server so others can watch
//	pet skins               - List available skins
//	pet stats               - Show recorded pet activity
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible behavior
//	--db <path>     - Set database path (default: ~/.tui-pet/pet.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pet",
	Short: "A desktop pet for your terminal",
	Long: `pet keeps a small autonomous creature in your terminal window.
It wanders, jumps on its own, and bounces off the window edges.

Available commands:
  watch    - Watch the pet in the current terminal
  serve    - Start SSH server for remote watching
  skins    - List available skins
  stats    - View recorded pet activity

Examples:
  pet watch
  pet watch --skin cat --temperament hyper
  pet serve --ssh :23235
  pet stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-pet/pet.db", "Path to activity database")

	// Add subcommands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(statsCmd)
}
