package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/mark3labs/pubflow/internal/config"
	"github.com/mark3labs/pubflow/internal/logger"
	pfnats "github.com/mark3labs/pubflow/internal/nats"
	"github.com/mark3labs/pubflow/internal/storage"
	"github.com/mark3labs/pubflow/internal/tui"
	"github.com/mark3labs/pubflow/internal/workflow"
)

var rootFlags struct {
	dataDir   string
	exportDir string
}

// env holds everything the commands need from the storage stack.
type env struct {
	gateway *storage.Gateway
	close   func()
}

// openEnv loads config, starts the embedded server and opens the
// buckets. The returned close function shuts everything down.
func openEnv(ctx context.Context) (*env, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if lvl, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	dataDir := cfg.DataDir
	if rootFlags.dataDir != "" {
		dataDir = rootFlags.dataDir
	}

	rt, err := pfnats.Open(ctx, dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening storage: %w", err)
	}

	return &env{
		gateway: storage.NewGateway(rt.Data, rt.ChangeLog),
		close: func() {
			if err := rt.Close(); err != nil {
				logger.Warn("shutdown: %v", err)
			}
		},
	}, cfg, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	e, cfg, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	// Seed the language preference from config on the very first run so
	// the stored preference wins on every later launch.
	if shown, err := e.gateway.FirstRunShown(ctx); err == nil && !shown {
		if err := e.gateway.SaveLang(ctx, workflow.NormalizeLang(cfg.Lang)); err != nil {
			logger.Warn("failed to seed language pref: %v", err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	app := tui.NewApp(ctx, e.gateway, rootFlags.exportDir)
	program := tea.NewProgram(app)

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
