package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/repository"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Initialize seeds the cache of repoID with files in encounter order until the cache is full. Files
// already cached are skipped and nothing is evicted.
func (x *UseCase) Initialize(ctx context.Context, repoID types.GitHubRepoID, files []string) error {
	return x.mutateCache(ctx, repoID, "initialize", func(set *model.CacheSet, now time.Time) *model.CacheChange {
		return set.Seed(files, now, x.cfg.CacheSize)
	})
}

// Lookup returns the hit count of every cached file of repoID. An empty map is returned when nothing
// is cached. It does not take the per-repository lock.
func (x *UseCase) Lookup(ctx context.Context, repoID types.GitHubRepoID) (map[string]int, error) {
	set, err := x.clients.Repository().GetCache(ctx, repoID, x.cfg.CacheSize)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get cache", goerr.V("repoID", repoID))
	}
	return set.Lookup(), nil
}

// Update records one fix observation of every file in files. Cached files are refreshed, others are
// admitted and the least recently hit entry is evicted when the cache is full. An empty cache is
// seeded like Initialize.
func (x *UseCase) Update(ctx context.Context, repoID types.GitHubRepoID, files []string) error {
	if len(files) == 0 {
		return nil
	}
	return x.mutateCache(ctx, repoID, "update", func(set *model.CacheSet, now time.Time) *model.CacheChange {
		return set.Apply(files, now, x.cfg.CacheSize)
	})
}

// mutateCache runs a read-modify-write of the cache of repoID. The write is conditional on the
// version that was read. On conflict the mutation is recomputed from a fresh read.
func (x *UseCase) mutateCache(ctx context.Context, repoID types.GitHubRepoID, op string, mutate func(*model.CacheSet, time.Time) *model.CacheChange) error {
	unlock := x.locks.Lock(repoID)
	defer unlock()

	logger := logging.From(ctx).With(slog.Any("repoID", repoID), slog.String("op", op))
	repo := x.clients.Repository()

	for attempt := 1; ; attempt++ {
		set, err := repo.GetCache(ctx, repoID, x.cfg.CacheSize)
		if err != nil {
			return goerr.Wrap(err, "failed to get cache", goerr.V("repoID", repoID))
		}

		change := mutate(set, logging.CtxTime(ctx))
		if !change.Changed() {
			return nil
		}

		err = repo.CommitCache(ctx, repoID, set.Version, set.Entries)
		if err == nil {
			observeCacheChange(change)
			logger.Info("Committed fix cache",
				slog.Int("size", len(set.Entries)),
				slog.Int("admitted", len(change.Admitted)),
				slog.Int("refreshed", len(change.Refreshed)),
				slog.Any("evicted", change.Evicted),
			)
			return nil
		}

		if !errors.Is(err, repository.ErrConflict) || attempt >= x.commitAttempts {
			return goerr.Wrap(err, "failed to commit cache",
				goerr.V("repoID", repoID),
				goerr.V("attempt", attempt),
			)
		}

		cacheConflicts.Inc()
		logger.Warn("Cache commit conflicted, retrying", slog.Int("attempt", attempt))
	}
}
