package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drones/cmd"
	httpin "drones/internal/adapters/in/http"
	"drones/internal/generated/servers"
	"drones/internal/jobs"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var envFile string

	root := &cobra.Command{
		Use:           "drones",
		Short:         "Drone fleet service for medication delivery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newServeCommand(&envFile),
		newMigrateCommand(&envFile),
		newSeedCommand(&envFile),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCommand(envFile *string) *cobra.Command {
	var withSeed bool

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the battery audit job",
		RunE: func(c *cobra.Command, _ []string) error {
			config, logger, err := setup(*envFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			storage, err := cmd.OpenStorage(config)
			if err != nil {
				return err
			}
			defer storage.Close()

			if err = storage.Migrate(); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			if withSeed || config.Storage == cmd.StorageMemory {
				if err = storage.Seed(ctx, logger); err != nil {
					return fmt.Errorf("failed to seed: %w", err)
				}
			}

			swagger, err := servers.GetSwagger()
			if err != nil {
				return fmt.Errorf("failed to load API document: %w", err)
			}
			if err = swagger.Validate(ctx); err != nil {
				return fmt.Errorf("invalid API document: %w", err)
			}

			app := cmd.NewCompositionRoot(config, storage.UoWFactory, logger)

			jobManager := jobs.NewJobManager(
				app.CreateAuditBatteryLevelsCommandHandler(),
				config.BatteryAuditSchedule,
				logger,
			)
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			return startWebServer(ctx, app, logger)
		},
	}
	command.Flags().BoolVar(&withSeed, "seed", false, "load the default fleet before serving")

	return command
}

func newMigrateCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			config, logger, err := setup(*envFile)
			if err != nil {
				return err
			}

			storage, err := cmd.OpenStorage(config)
			if err != nil {
				return err
			}
			defer storage.Close()

			if err = storage.Migrate(); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			logger.Info("Schema migrated", "storage", config.Storage)
			return nil
		},
	}
}

func newSeedCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the default fleet and medication catalog",
		RunE: func(c *cobra.Command, _ []string) error {
			config, logger, err := setup(*envFile)
			if err != nil {
				return err
			}

			storage, err := cmd.OpenStorage(config)
			if err != nil {
				return err
			}
			defer storage.Close()

			if err = storage.Migrate(); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			return storage.Seed(c.Context(), logger)
		},
	}
}

func setup(envFile string) (cmd.Config, *slog.Logger, error) {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	return config, logger, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, logger *slog.Logger) error {
	e := httpin.NewRouter(httpin.NewServer(app.CreateFleetService()), logger)
	e.Logger.SetLevel(log.INFO)

	address := fmt.Sprintf("0.0.0.0:%s", app.Config().HTTPPort)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down HTTP server")
	return e.Shutdown(shutdownCtx)
}
