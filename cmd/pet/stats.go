package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pet/internal/storage"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded pet activity",
	Long: `Display recent pet sessions and lifetime activity totals.

Examples:
  pet stats
  pet stats --limit 20`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent sessions to show")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening activity database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Pet activity")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pet watch' to spend some time with your pet!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-8s  %-6s  %-8s  %-10s  %s\n", "Skin", "Time", "Jumps", "Bounces", "Distance", "Date")
	fmt.Printf("  %-6s  %-8s  %-6s  %-8s  %-10s  %s\n", "----", "----", "-----", "-------", "--------", "----")

	for _, sess := range sessions {
		dateStr := sess.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6s  %-8s  %-6d  %-8d  %-10s  %s\n",
			sess.SkinID,
			(time.Duration(sess.Duration) * time.Second).String(),
			sess.Jumps,
			sess.Bounces,
			fmt.Sprintf("%.0f px", sess.DistancePx),
			dateStr,
		)
	}

	// Lifetime totals
	totals, err := store.LifetimeTotals()
	if err == nil && totals.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Lifetime: %d sessions, %s together, %d jumps, %d bounces, %.0f px travelled\n",
			totals.Sessions,
			(time.Duration(totals.Seconds) * time.Second).String(),
			totals.Jumps,
			totals.Bounces,
			totals.DistancePx,
		)
	}
}
