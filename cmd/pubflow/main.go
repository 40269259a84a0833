package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mark3labs/pubflow/internal/logger"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubflow",
	Short: "PR production workflow planner with embedded persistence and TUI",
	Long: `pubflow plans and tracks a public-relations production workflow:
briefing and interview preparation plus a phase-grouped task tracker
with table, kanban and Gantt views, soft dependency warnings and
progress rollups.

State persists through embedded NATS JetStream; saved data expires
after 12 hours.`,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.dataDir, "data-dir", "", "Data directory for storage (default: .pubflow)")
	rootCmd.Flags().StringVar(&rootFlags.exportDir, "export-dir", ".", "Directory for exported files")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
}
