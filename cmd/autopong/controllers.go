package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autopong/internal/registry"
)

var controllersCmd = &cobra.Command{
	Use:   "controllers",
	Short: "List all paddle controllers",
	Long:  `Shows the controllers that can drive a paddle via --left/--right or the config file.`,
	Args:  cobra.NoArgs,
	RunE:  runControllers,
}

func runControllers(cmd *cobra.Command, args []string) error {
	list := registry.List()
	out := cmd.OutOrStdout()

	if len(list) == 0 {
		fmt.Fprintln(out, "No controllers available.")
		return nil
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range list {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, c := range list {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, c.ID, c.Description)
	}
	return nil
}
