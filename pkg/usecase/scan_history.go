package usecase

import (
	"context"
	"log/slog"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// ScanHistory returns the files touched by fix commits on the tracked branch of repo within the
// configured history window. A file appears once per qualifying commit, in commit listing order.
// Merge commits are skipped.
func (x *UseCase) ScanHistory(ctx context.Context, repo *model.Repository, source interfaces.CommitSource) ([]string, error) {
	logger := logging.From(ctx).With(slog.String("repo", repo.FullName()))

	cutoff := logging.CtxTime(ctx).AddDate(0, 0, -x.cfg.HistorySize)
	commits, err := source.ListCommits(ctx, repo, repo.TrackedBranch, cutoff)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits for history scan",
			goerr.V("repo", repo.FullName()),
			goerr.V("cutoff", cutoff),
		)
	}

	var fixes []*model.Commit
	for _, c := range commits {
		if c.IsMerge() || !model.IsFixMessage(c.Message, repo.FixKeywords) {
			continue
		}
		fixes = append(fixes, c)
	}

	// Each worker writes only its own slot so listing order survives the fan-out
	results := make([][]string, len(fixes))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(x.fetchConcurrency)
	for i, c := range fixes {
		eg.Go(func() error {
			detail, err := source.GetCommit(egCtx, repo, c.SHA)
			if err != nil {
				return goerr.Wrap(err, "failed to get fix commit", goerr.V("sha", c.SHA))
			}
			results[i] = model.ExtractFiles(detail, repo.SkipPaths)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "history scan aborted", goerr.V("repo", repo.FullName()))
	}

	var files []string
	for _, r := range results {
		files = append(files, r...)
	}

	logger.Info("Scanned commit history",
		slog.Time("cutoff", cutoff),
		slog.Int("commits", len(commits)),
		slog.Int("fix_commits", len(fixes)),
		slog.Int("files", len(files)),
	)

	return files, nil
}

// WarmCache seeds the cache of repo from its fix history.
func (x *UseCase) WarmCache(ctx context.Context, repo *model.Repository, source interfaces.CommitSource) error {
	files, err := x.ScanHistory(ctx, repo, source)
	if err != nil {
		return err
	}
	return x.Initialize(ctx, repo.ID, files)
}
