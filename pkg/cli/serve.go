package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fluidattacks/roots/pkg/cli/config"
	"github.com/fluidattacks/roots/pkg/controller/server"
	"github.com/fluidattacks/roots/pkg/infra"
	"github.com/fluidattacks/roots/pkg/usecase"
	"github.com/fluidattacks/roots/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		database   config.Database
		scannerCfg config.Scanner
		githubApp  config.GitHubApp
		bigQuery   config.BigQuery
		storage    config.Storage
		sentry     config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("ROOTS_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			database.Flags(),
			scannerCfg.Flags(),
			githubApp.Flags(),
			bigQuery.Flags(),
			storage.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Database", database),
				slog.Any("Scanner", scannerCfg),
				slog.Any("GitHubApp", githubApp),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Storage", storage),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			repo, err := database.NewRepository(ctx)
			if err != nil {
				return err
			}

			scannerClient, err := scannerCfg.NewClient()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithRootRepository(repo),
				infra.WithScanner(scannerClient),
			}

			if githubApp.Configured() {
				ghApp, err := githubApp.New()
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithGitHubApp(ghApp))
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			if storageClient, err := storage.NewClient(ctx); err != nil {
				return err
			} else if storageClient != nil {
				defer storageClient.Close()
				infraOptions = append(infraOptions, infra.WithStorage(storageClient))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients)
			s := server.New(uc, server.WithGitHubSecret(githubApp.Secret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
