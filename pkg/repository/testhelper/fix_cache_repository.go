package testhelper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for FixCacheRepository
// This is the main entry point for testing any FixCacheRepository implementation
func TestAll(t *testing.T, repo interfaces.FixCacheRepository) {
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, repo)
	})
	t.Run("PutRepositoriesBatchLimit", func(t *testing.T) {
		TestPutRepositoriesBatchLimit(t, repo)
	})
	t.Run("EmptyCache", func(t *testing.T) {
		TestEmptyCache(t, repo)
	})
	t.Run("CommitCache", func(t *testing.T) {
		TestCommitCache(t, repo)
	})
	t.Run("CommitCacheConflict", func(t *testing.T) {
		TestCommitCacheConflict(t, repo)
	})
	t.Run("GetCacheLimit", func(t *testing.T) {
		TestGetCacheLimit(t, repo)
	})
}

func newRepoID() types.GitHubRepoID {
	return types.GitHubRepoID(rand.Int64N(1<<40) + 1)
}

func newTestRepository() *model.Repository {
	id := newRepoID()
	now := time.Now().UTC().Truncate(time.Second)
	return &model.Repository{
		ID:             id,
		Owner:          fmt.Sprintf("owner-%d", id),
		Name:           fmt.Sprintf("repo-%d", id),
		InstallationID: 12345,
		TrackedBranch:  "main",
		SkipPaths:      []string{"vendor/"},
		FixKeywords:    []string{"fix", "bug"},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func newEntry(path string, hits int, lastHit time.Time, seq int64) *model.CacheEntry {
	return &model.CacheEntry{
		Path:     path,
		HitCount: hits,
		LastHit:  lastHit,
		Seq:      seq,
	}
}

// TestRepositoryCRUD tests put and get of repository metadata
func TestRepositoryCRUD(t *testing.T, repo interfaces.FixCacheRepository) {
	ctx := context.Background()

	testRepo := newTestRepository()
	gt.NoError(t, repo.PutRepositories(ctx, []*model.Repository{testRepo}))

	retrieved, err := repo.GetRepository(ctx, testRepo.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(testRepo.ID)
	gt.V(t, retrieved.Owner).Equal(testRepo.Owner)
	gt.V(t, retrieved.Name).Equal(testRepo.Name)
	gt.V(t, retrieved.InstallationID).Equal(testRepo.InstallationID)
	gt.V(t, retrieved.TrackedBranch).Equal("main")
	gt.V(t, retrieved.SkipPaths).Equal([]string{"vendor/"})
	gt.V(t, retrieved.FixKeywords).Equal([]string{"fix", "bug"})

	// Upsert overwrites the record
	testRepo.TrackedBranch = "develop"
	gt.NoError(t, repo.PutRepositories(ctx, []*model.Repository{testRepo}))

	retrieved, err = repo.GetRepository(ctx, testRepo.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.TrackedBranch).Equal("develop")

	// Test not found
	_, err = repo.GetRepository(ctx, newRepoID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestPutRepositoriesBatchLimit tests that oversized batches are rejected without writing anything
func TestPutRepositoriesBatchLimit(t *testing.T, repo interfaces.FixCacheRepository) {
	ctx := context.Background()

	var repos []*model.Repository
	for i := 0; i < repository.MaxBatchSize+1; i++ {
		repos = append(repos, newTestRepository())
	}

	err := repo.PutRepositories(ctx, repos)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrBatchLimit))

	_, err = repo.GetRepository(ctx, repos[0].ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// Exactly at the limit is accepted
	gt.NoError(t, repo.PutRepositories(ctx, repos[:repository.MaxBatchSize]))
}

// TestEmptyCache tests reading the cache of a repository that has no entries
func TestEmptyCache(t *testing.T, repo interfaces.FixCacheRepository) {
	ctx := context.Background()
	repoID := newRepoID()

	set, err := repo.GetCache(ctx, repoID, 10)
	gt.NoError(t, err)
	gt.V(t, set.RepoID).Equal(repoID)
	gt.V(t, set.Version).Equal(int64(0))
	gt.A(t, set.Entries).Length(0)
}

// TestCommitCache tests that a commit replaces the whole entry set
func TestCommitCache(t *testing.T, repo interfaces.FixCacheRepository) {
	ctx := context.Background()
	repoID := newRepoID()
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	gt.NoError(t, repo.CommitCache(ctx, repoID, 0, []*model.CacheEntry{
		newEntry("b.go", 1, t1, 2),
		newEntry("a.go", 1, t1, 1),
		newEntry("pkg/c.go", 3, t2, 3),
	}))

	set, err := repo.GetCache(ctx, repoID, 10)
	gt.NoError(t, err)
	gt.A(t, set.Entries).Length(3)
	gt.V(t, set.Version).NotEqual(int64(0))

	// Entries are ordered by Seq
	gt.V(t, set.Entries[0].Path).Equal("a.go")
	gt.V(t, set.Entries[1].Path).Equal("b.go")
	gt.V(t, set.Entries[2].Path).Equal("pkg/c.go")
	gt.V(t, set.Entries[2].HitCount).Equal(3)
	gt.True(t, set.Entries[2].LastHit.Equal(t2))
	gt.V(t, set.Entries[0].RepoID).Equal(repoID)

	// Replacing drops entries that are not part of the new set
	gt.NoError(t, repo.CommitCache(ctx, repoID, set.Version, []*model.CacheEntry{
		newEntry("b.go", 2, t2, 2),
		newEntry("d.go", 1, t2, 4),
	}))

	set, err = repo.GetCache(ctx, repoID, 10)
	gt.NoError(t, err)
	gt.A(t, set.Entries).Length(2)
	gt.V(t, set.Lookup()).Equal(map[string]int{"b.go": 2, "d.go": 1})
}

// TestCommitCacheConflict tests that a stale version is rejected and leaves the set unchanged
func TestCommitCacheConflict(t *testing.T, repo interfaces.FixCacheRepository) {
	ctx := context.Background()
	repoID := newRepoID()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	gt.NoError(t, repo.CommitCache(ctx, repoID, 0, []*model.CacheEntry{
		newEntry("a.go", 1, now, 1),
	}))

	// Second writer still holds version 0
	err := repo.CommitCache(ctx, repoID, 0, []*model.CacheEntry{
		newEntry("x.go", 1, now, 1),
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrConflict))

	set, err := repo.GetCache(ctx, repoID, 10)
	gt.NoError(t, err)
	gt.V(t, set.Lookup()).Equal(map[string]int{"a.go": 1})
}

// TestGetCacheLimit tests that GetCache returns at most limit entries in Seq order
func TestGetCacheLimit(t *testing.T, repo interfaces.FixCacheRepository) {
	ctx := context.Background()
	repoID := newRepoID()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var entries []*model.CacheEntry
	for i := 1; i <= 5; i++ {
		entries = append(entries, newEntry(fmt.Sprintf("file%d.go", i), 1, now, int64(i)))
	}
	gt.NoError(t, repo.CommitCache(ctx, repoID, 0, entries))

	set, err := repo.GetCache(ctx, repoID, 3)
	gt.NoError(t, err)
	gt.A(t, set.Entries).Length(3)
	gt.V(t, set.Entries[0].Path).Equal("file1.go")
	gt.V(t, set.Entries[2].Path).Equal("file3.go")
}
