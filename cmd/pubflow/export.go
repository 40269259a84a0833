package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mark3labs/pubflow/internal/export"
	"github.com/mark3labs/pubflow/internal/form"
	"github.com/mark3labs/pubflow/internal/storage"
	"github.com/mark3labs/pubflow/internal/workflow"
)

var exportFlags struct {
	format string
	out    string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the saved workflow data as JSON or CSV",
	Long: `Write the saved workflow data without opening the TUI.

JSON re-serializes the persisted snapshot verbatim. CSV restores the
snapshot into a live form first and writes one row per editable field.
With no saved snapshot the JSON export is a no-op and the CSV export
writes the defaults.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "f", "csv", "Export format: csv or json")
	exportCmd.Flags().StringVarP(&exportFlags.out, "out", "o", ".", "Output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	e, cfg, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	switch exportFlags.format {
	case "json":
		return exportJSON(ctx, e.gateway)
	case "csv":
		return exportCSV(ctx, e.gateway, workflow.NormalizeLang(cfg.Lang))
	default:
		return fmt.Errorf("unsupported format %q (expected csv or json)", exportFlags.format)
	}
}

// exportJSON writes the persisted snapshot bytes verbatim. No snapshot
// means nothing to write.
func exportJSON(ctx context.Context, g *storage.Gateway) error {
	raw, found, err := g.SnapshotRaw(ctx)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	if !found {
		fmt.Println("no saved data")
		return nil
	}

	f, _ := restoredState(ctx, g)
	path, err := export.WriteFile(exportFlags.out, export.FileName(f.Project.Name, "json"), raw)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// exportCSV restores the snapshot into live structures and writes the
// field rows.
func exportCSV(ctx context.Context, g *storage.Gateway, lang workflow.Lang) error {
	f, store := restoredState(ctx, g)

	interviewType := ""
	if _, found, err := g.SnapshotRaw(ctx); err == nil && found {
		interviewType = string(f.InterviewType)
	}

	data := export.CSV(f, store, interviewType, lang)
	path, err := export.WriteFile(exportFlags.out, export.FileName(f.Project.Name, "csv"), data)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// restoredState rebuilds the form and task rows from the saved
// snapshot, falling back to the defaults when none exists.
func restoredState(ctx context.Context, g *storage.Gateway) (*form.Form, *workflow.Store) {
	lang, _ := g.LoadLang(ctx)
	f := form.New(lang)
	store := workflow.DefaultStore()
	if snap, found, err := g.LoadSnapshot(ctx); err == nil && found {
		snap.Apply(f, store)
	}
	return f, store
}
