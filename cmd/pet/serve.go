package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/platform/tui"
)

var (
	flagSSHAddr          string
	flagHostKey          string
	flagServeSkin        string
	flagServeTemperament string
	flagServeConfig      string
	flagIdleTimeout      int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pet SSH server",
	Long: `Start an SSH server that lets users connect and watch the pet.

Each SSH connection gets its own pet sized to its terminal.
Activity is stored per-server (all sessions share the database).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tui-pet/host_key

Examples:
  pet serve                          # Listen on :23235 with auto-generated key
  pet serve --ssh :2222              # Listen on port 2222
  pet serve --skin ghost             # Serve the ghost skin
  pet serve --host-key ./my_host_key # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeSkin, "skin", "blob", "Pet skin served to sessions")
	serveCmd.Flags().StringVar(&flagServeTemperament, "temperament", "normal", "Behavior preset: calm, normal, hyper")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom pet config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		SkinID:      flagServeSkin,
		Temperament: config.Temperament(flagServeTemperament),
		ConfigPath:  flagServeConfig,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pet SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
