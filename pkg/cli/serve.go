package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aavshr/fixcache/pkg/cli/config"
	"github.com/aavshr/fixcache/pkg/controller/server"
	"github.com/aavshr/fixcache/pkg/infra"
	"github.com/aavshr/fixcache/pkg/usecase"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr             string
		fetchConcurrency int

		githubApp config.GitHubApp
		firestore config.Firestore
		fixCache  config.FixCache
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("FIXCACHE_ADDR"),
			Destination: &addr,
		},
		&cli.IntFlag{
			Name:        "fetch-concurrency",
			Usage:       "Number of commits fetched in parallel during a history scan",
			Value:       4,
			Sources:     cli.EnvVars("FIXCACHE_FETCH_CONCURRENCY"),
			Destination: &fetchConcurrency,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			firestore.Flags(),
			fixCache.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Firestore", &firestore),
				slog.Any("FixCache", &fixCache),
				slog.Any("Sentry", &sentry),
			)

			cfg, err := fixCache.Build(c)
			if err != nil {
				return err
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(5 * time.Second)

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			repo, err := firestore.NewRepository(ctx)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGitHubApp(ghApp),
				infra.WithRepository(repo),
			)

			uc, err := usecase.New(clients, cfg, usecase.WithFetchConcurrency(fetchConcurrency))
			if err != nil {
				return err
			}
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
					serverErr <- goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", addr))
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
