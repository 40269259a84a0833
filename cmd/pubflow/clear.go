package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var clearFlags struct {
	yes bool
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved snapshot and change log",
	Long: `Delete the saved workflow snapshot and change history.

Language and first-run preferences are kept. Requires --yes to
actually delete.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearFlags.yes, "yes", "y", false, "Confirm deletion")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearFlags.yes {
		return fmt.Errorf("refusing to delete without --yes")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	e, _, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.gateway.Clear(ctx); err != nil {
		return fmt.Errorf("clearing saved data: %w", err)
	}
	fmt.Println("saved data cleared")
	return nil
}
