// autopong is a two-paddle ball-bounce simulation for the terminal.
//
// Usage:
//
//	autopong play                  - Watch (or join) a match in the terminal
//	autopong sim                   - Run a match headless and print a summary
//	autopong predict <x> <y> <vx> <vy> - Show where the autopilot expects the ball
//	autopong controllers           - List available paddle controllers
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.autopong, ./configs, built-in)
//	--log-level <level> - debug, info, warn or error (default from config)
//	--log-file <path>   - Append logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autopong",
	Short: "autopong - two paddles, one ball, no humans required",
	Long: `autopong runs a fixed-timestep pong table where both paddles are
driven by controllers: an autopilot that predicts the ball's bounce point,
the keyboard, or nothing at all.

Available commands:
  play         - Run the table in the terminal
  sim          - Run the table headless and print a summary
  predict      - Evaluate the autopilot's bounce prediction
  controllers  - List paddle controllers

Examples:
  autopong play
  autopong play --right keyboard
  autopong sim --frames 3600 --show
  autopong predict 512 384 -10 -10`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(controllersCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(predictCmd)
}
