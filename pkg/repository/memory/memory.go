package memory

import (
	"sync"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
)

type cacheData struct {
	version int64
	entries []*model.CacheEntry
}

type fixCacheRepository struct {
	mu    sync.RWMutex
	repos map[types.GitHubRepoID]*model.Repository
	cache map[types.GitHubRepoID]*cacheData
}

var _ interfaces.FixCacheRepository = (*fixCacheRepository)(nil)

// New creates a new in-memory repository
func New() interfaces.FixCacheRepository {
	return &fixCacheRepository{
		repos: make(map[types.GitHubRepoID]*model.Repository),
		cache: make(map[types.GitHubRepoID]*cacheData),
	}
}
