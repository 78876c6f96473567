package cli

import (
	"context"
	"log/slog"

	"github.com/aavshr/fixcache/pkg/cli/config"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var (
		repoID    int64
		limit     int
		firestore config.Firestore
	)

	return &cli.Command{
		Name:  "show",
		Usage: "Print the stored fix cache of a registered repository",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "repo-id",
				Usage:       "GitHub repository ID",
				Destination: &repoID,
				Required:    true,
			},
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "Maximum number of entries to print",
				Value:       100,
				Destination: &limit,
			},
		}, firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting show",
				slog.Int64("repoID", repoID),
				slog.Any("Firestore", &firestore),
			)

			repo, err := firestore.RequireRepository(ctx)
			if err != nil {
				return err
			}

			id := types.GitHubRepoID(repoID)
			meta, err := repo.GetRepository(ctx, id)
			if err != nil {
				return err
			}

			set, err := repo.GetCache(ctx, id, limit)
			if err != nil {
				return goerr.Wrap(err, "failed to get fix cache", goerr.V("repoID", id))
			}

			logging.Default().Info("fix cache",
				slog.String("repo", meta.FullName()),
				slog.String("trackedBranch", meta.TrackedBranch),
				slog.Int64("version", set.Version),
				slog.Int("entries", len(set.Entries)),
			)
			renderCache(c.Root().Writer, set)
			return nil
		},
	}
}
