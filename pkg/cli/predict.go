package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/aavshr/fixcache/pkg/cli/config"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/infra"
	"github.com/aavshr/fixcache/pkg/infra/gitlocal"
	"github.com/aavshr/fixcache/pkg/repository/memory"
	"github.com/aavshr/fixcache/pkg/usecase"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/aavshr/fixcache/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func predictCommand() *cli.Command {
	var fixCache config.FixCache

	return &cli.Command{
		Name:      "predict",
		Aliases:   []string{"p"},
		Usage:     "Scan the history of a git repository and print the files the fix cache would hold",
		ArgsUsage: "[path or URL]",
		Flags:     fixCache.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := fixCache.Build(c)
			if err != nil {
				return err
			}

			location := c.Args().First()
			if location == "" {
				location = "."
			}

			logging.Default().Info("starting predict",
				slog.String("location", location),
				slog.Any("FixCache", &fixCache),
			)

			set, err := runPredict(ctx, location, cfg)
			if err != nil {
				return err
			}

			renderCache(c.Root().Writer, set)
			return nil
		},
	}
}

func openSource(ctx context.Context, location string) (*gitlocal.Source, func(), error) {
	if !isRemoteLocation(location) {
		src, err := gitlocal.Open(location)
		return src, func() {}, err
	}

	dir, err := os.MkdirTemp("", "fixcache-*")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create temp dir for clone")
	}
	cleanup := func() { safe.RemoveAll(dir) }

	logging.From(ctx).Info("cloning repository", slog.String("url", location), slog.String("dir", dir))
	src, err := gitlocal.Clone(ctx, location, dir)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return src, cleanup, nil
}

// runPredict warms an in-memory fix cache from the history of the repository at location.
func runPredict(ctx context.Context, location string, cfg model.Config) (*model.CacheSet, error) {
	src, cleanup, err := openSource(ctx, location)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	remote, err := src.RemoteURL("origin")
	if err != nil {
		return nil, err
	}
	owner, name := repoName(location, remote)

	repo := &model.Repository{
		Owner:         owner,
		Name:          name,
		TrackedBranch: cfg.TrackedBranch,
		SkipPaths:     cfg.SkipPaths,
		FixKeywords:   cfg.FixKeywords,
	}

	store := memory.New()
	uc, err := usecase.New(infra.New(infra.WithRepository(store)), cfg)
	if err != nil {
		return nil, err
	}

	if err := uc.WarmCache(ctx, repo, src); err != nil {
		return nil, err
	}

	set, err := store.GetCache(ctx, repo.ID, cfg.CacheSize)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read predicted cache", goerr.V("repo", repo.FullName()))
	}
	return set, nil
}
