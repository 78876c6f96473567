package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/repository"
	"github.com/aavshr/fixcache/pkg/repository/memory"
	"github.com/aavshr/fixcache/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

const testRepoID = types.GitHubRepoID(100)

func TestLookupEmpty(t *testing.T) {
	uc := newUseCase(t, testConfig(), memory.New(), nil)

	hits, err := uc.Lookup(ctxAt(baseTime), testRepoID)
	gt.NoError(t, err)
	gt.V(t, len(hits)).Equal(0)
}

func TestUpdateEvictionScenario(t *testing.T) {
	cfg := testConfig()
	cfg.CacheSize = 2
	uc := newUseCase(t, cfg, memory.New(), nil)
	ctx := ctxAt(baseTime)

	gt.NoError(t, uc.Update(ctx, testRepoID, []string{"a.go", "b.go", "c.go"}))

	hits := gt.R1(uc.Lookup(ctx, testRepoID)).NoError(t)
	gt.V(t, hits).Equal(map[string]int{"a.go": 1, "b.go": 1})
}

func TestUpdateEmptyFiles(t *testing.T) {
	repo := spyRepository(memory.New())
	uc := newUseCase(t, testConfig(), repo, nil)

	gt.NoError(t, uc.Update(ctxAt(baseTime), testRepoID, nil))
	gt.A(t, repo.GetCacheCalls()).Length(0)
	gt.A(t, repo.CommitCacheCalls()).Length(0)
}

func TestUpdateRefreshAndEvict(t *testing.T) {
	uc := newUseCase(t, testConfig(), memory.New(), nil)

	gt.NoError(t, uc.Update(ctxAt(baseTime), testRepoID, []string{"a.go", "b.go", "c.go"}))

	// a.go is refreshed and becomes the most recently hit entry
	gt.NoError(t, uc.Update(ctxAt(baseTime.Add(time.Hour)), testRepoID, []string{"a.go"}))
	hits := gt.R1(uc.Lookup(ctxAt(baseTime), testRepoID)).NoError(t)
	gt.V(t, hits["a.go"]).Equal(2)

	// b.go and c.go tie on last hit, b.go was seen first
	gt.NoError(t, uc.Update(ctxAt(baseTime.Add(2*time.Hour)), testRepoID, []string{"d.go"}))
	hits = gt.R1(uc.Lookup(ctxAt(baseTime), testRepoID)).NoError(t)
	gt.V(t, hits).Equal(map[string]int{"a.go": 2, "c.go": 1, "d.go": 1})
}

func TestInitialize(t *testing.T) {
	t.Run("truncates to cache size", func(t *testing.T) {
		uc := newUseCase(t, testConfig(), memory.New(), nil)
		ctx := ctxAt(baseTime)

		gt.NoError(t, uc.Initialize(ctx, testRepoID, []string{"a.go", "b.go", "a.go", "c.go", "d.go"}))
		hits := gt.R1(uc.Lookup(ctx, testRepoID)).NoError(t)
		gt.V(t, hits).Equal(map[string]int{"a.go": 1, "b.go": 1, "c.go": 1})
	})

	t.Run("does not evict from a populated cache", func(t *testing.T) {
		uc := newUseCase(t, testConfig(), memory.New(), nil)
		ctx := ctxAt(baseTime)

		gt.NoError(t, uc.Update(ctx, testRepoID, []string{"a.go", "b.go"}))
		gt.NoError(t, uc.Initialize(ctx, testRepoID, []string{"x.go", "y.go", "a.go"}))

		hits := gt.R1(uc.Lookup(ctx, testRepoID)).NoError(t)
		gt.V(t, hits).Equal(map[string]int{"a.go": 1, "b.go": 1, "x.go": 1})
	})

	t.Run("nothing to write", func(t *testing.T) {
		repo := spyRepository(memory.New())
		uc := newUseCase(t, testConfig(), repo, nil)

		gt.NoError(t, uc.Initialize(ctxAt(baseTime), testRepoID, nil))
		gt.A(t, repo.CommitCacheCalls()).Length(0)
	})
}

func TestUpdateRetriesOnConflict(t *testing.T) {
	store := memory.New()
	repo := spyRepository(store)

	// Another writer commits right before our first commit
	var once sync.Once
	repo.CommitCacheFunc = func(ctx context.Context, repoID types.GitHubRepoID, version int64, entries []*model.CacheEntry) error {
		once.Do(func() {
			gt.NoError(t, store.CommitCache(ctx, repoID, version, []*model.CacheEntry{
				{Path: "other.go", HitCount: 1, LastHit: baseTime, Seq: 1},
			}))
		})
		return store.CommitCache(ctx, repoID, version, entries)
	}

	uc := newUseCase(t, testConfig(), repo, nil)
	ctx := ctxAt(baseTime.Add(time.Minute))
	gt.NoError(t, uc.Update(ctx, testRepoID, []string{"a.go"}))

	gt.A(t, repo.CommitCacheCalls()).Length(2)
	gt.A(t, repo.GetCacheCalls()).Length(2)

	// The recomputed update kept the other writer's entry
	hits := gt.R1(uc.Lookup(ctx, testRepoID)).NoError(t)
	gt.V(t, hits).Equal(map[string]int{"other.go": 1, "a.go": 1})
}

func TestUpdateGivesUpAfterAttempts(t *testing.T) {
	repo := spyRepository(memory.New())
	repo.CommitCacheFunc = func(ctx context.Context, repoID types.GitHubRepoID, version int64, entries []*model.CacheEntry) error {
		return goerr.Wrap(repository.ErrConflict, "always conflicting")
	}

	uc := newUseCase(t, testConfig(), repo, nil, usecase.WithCommitAttempts(3))
	err := uc.Update(ctxAt(baseTime), testRepoID, []string{"a.go"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrConflict))
	gt.A(t, repo.CommitCacheCalls()).Length(3)
}

func TestUpdateStoreFailure(t *testing.T) {
	repo := spyRepository(memory.New())
	repo.CommitCacheFunc = func(ctx context.Context, repoID types.GitHubRepoID, version int64, entries []*model.CacheEntry) error {
		return errors.New("unavailable")
	}

	uc := newUseCase(t, testConfig(), repo, nil)
	gt.Error(t, uc.Update(ctxAt(baseTime), testRepoID, []string{"a.go"}))
	// Non-conflict errors are not retried
	gt.A(t, repo.CommitCacheCalls()).Length(1)
}

func TestConcurrentUpdates(t *testing.T) {
	cfg := testConfig()
	cfg.CacheSize = 10

	t.Run("same process", func(t *testing.T) {
		uc := newUseCase(t, cfg, memory.New(), nil)
		runConcurrentUpdates(t, uc, uc)
	})

	t.Run("two processes sharing a store", func(t *testing.T) {
		store := memory.New()
		uc1 := newUseCase(t, cfg, store, nil, usecase.WithCommitAttempts(100))
		uc2 := newUseCase(t, cfg, store, nil, usecase.WithCommitAttempts(100))
		runConcurrentUpdates(t, uc1, uc2)
	})
}

func runConcurrentUpdates(t *testing.T, uc1, uc2 *usecase.UseCase) {
	const n = 20
	ctx := ctxAt(baseTime)

	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		uc := uc1
		if i%2 == 1 {
			uc = uc2
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			files := []string{"shared.go", fmt.Sprintf("f%d.go", i%3)}
			errs <- uc.Update(ctx, testRepoID, files)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		gt.NoError(t, err)
	}

	// Equivalent to applying all updates one after another
	hits := gt.R1(uc1.Lookup(ctx, testRepoID)).NoError(t)
	gt.V(t, hits).Equal(map[string]int{
		"shared.go": n,
		"f0.go":     7,
		"f1.go":     7,
		"f2.go":     6,
	})
}
