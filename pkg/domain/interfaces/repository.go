package interfaces

import (
	"context"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
)

//go:generate moq -out ../mock/repository_mock.go -pkg mock . FixCacheRepository

// FixCacheRepository stores repository metadata and the fix-prone file cache of each repository.
type FixCacheRepository interface {
	// Repository metadata
	GetRepository(ctx context.Context, repoID types.GitHubRepoID) (*model.Repository, error)
	// PutRepositories upserts at most repository.MaxBatchSize records keyed by ID.
	PutRepositories(ctx context.Context, repos []*model.Repository) error

	// Fix cache
	// GetCache returns at most limit entries of the repository ordered by Seq, together with the
	// current version of the set. A repository without entries yields an empty set.
	GetCache(ctx context.Context, repoID types.GitHubRepoID, limit int) (*model.CacheSet, error)
	// CommitCache replaces the whole entry set of the repository if the stored version still equals
	// version, otherwise it fails with repository.ErrConflict and changes nothing.
	CommitCache(ctx context.Context, repoID types.GitHubRepoID, version int64, entries []*model.CacheEntry) error
}
