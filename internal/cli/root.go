// Package cli implements churchctl, the operator command line.
package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Joseph-Edoh/Church-connect/internal/app"
	"github.com/Joseph-Edoh/Church-connect/internal/config"
)

// errNeedsPostgres is returned by commands that would only touch a
// throwaway in-memory store.
var errNeedsPostgres = errors.New("this command needs STORAGE_DRIVER=postgres")

// NewRootCommand creates the churchctl root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "churchctl",
		Short: "ChurchConnect operator tool",
		Long: `Operator commands for a ChurchConnect deployment.

Configuration is read the same way the server reads it: CONFIG_PATH,
a .env file and environment variables.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewSeedCommand())
	cmd.AddCommand(NewPromoteCommand())
	cmd.AddCommand(NewPolicyCommand())

	return cmd
}

// env is what a command needs once configuration is loaded.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: app.NewLogger(cfg.Log)}, nil
}

// openPostgres opens the configured store, refusing the memory driver.
// AutoMigrate applies as it does for the server.
func (e *env) openPostgres(ctx context.Context) (*app.Storage, error) {
	if e.cfg.Storage.Driver != config.DriverPostgres {
		return nil, errNeedsPostgres
	}
	return app.OpenStorage(ctx, e.cfg, e.logger)
}
