package memory

import (
	"context"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// Repository operations

func (r *fixCacheRepository) GetRepository(ctx context.Context, repoID types.GitHubRepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, exists := r.repos[repoID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", repoID),
		)
	}

	return copyRepository(repo), nil
}

func (r *fixCacheRepository) PutRepositories(ctx context.Context, repos []*model.Repository) error {
	if err := repository.CheckBatch(len(repos)); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, repo := range repos {
		r.repos[repo.ID] = copyRepository(repo)
	}

	return nil
}

// Cache operations

func (r *fixCacheRepository) GetCache(ctx context.Context, repoID types.GitHubRepoID, limit int) (*model.CacheSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := &model.CacheSet{RepoID: repoID}
	data, exists := r.cache[repoID]
	if !exists {
		return set, nil
	}

	set.Version = data.version
	for i, entry := range data.entries {
		if limit > 0 && i >= limit {
			break
		}
		set.Entries = append(set.Entries, copyEntry(entry))
	}

	return set, nil
}

func (r *fixCacheRepository) CommitCache(ctx context.Context, repoID types.GitHubRepoID, version int64, entries []*model.CacheEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.cache[repoID]
	if !exists {
		data = &cacheData{}
	}

	if data.version != version {
		return goerr.Wrap(repository.ErrConflict, "cache was updated by another writer",
			goerr.V("repoID", repoID),
			goerr.V("expected", version),
			goerr.V("actual", data.version),
		)
	}

	copied := make([]*model.CacheEntry, len(entries))
	for i, entry := range entries {
		copied[i] = copyEntry(entry)
		copied[i].RepoID = repoID
	}

	r.cache[repoID] = &cacheData{
		version: version + 1,
		entries: sortEntries(copied),
	}

	return nil
}
