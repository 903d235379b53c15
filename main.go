package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"dining-agent/config"
	"dining-agent/services"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dining-agent",
		Short:         "Conversational restaurant reservation agent with a business dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newChatCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// app bundles the components shared by the serve and chat commands
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	agent  *services.Agent
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger := newLogger(cfg)
	logger.Info("Starting dining agent", slog.String("provider", cfg.AIProvider), slog.String("model", cfg.AIModel))

	provider, err := services.NewProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init AI provider: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		agent:  services.NewAgent(provider, services.NewToolRegistry(logger), logger),
	}, nil
}

// newState creates a session with a freshly generated catalog
func (a *app) newState() *services.AppState {
	return services.NewAppState(services.GenerateCatalog(a.cfg.CatalogSize, services.NewRand(a.cfg.CatalogSeed)))
}

func newLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return logger
}
