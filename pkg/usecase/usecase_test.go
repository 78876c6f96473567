package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/mock"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/infra"
	"github.com/aavshr/fixcache/pkg/repository/memory"
	"github.com/aavshr/fixcache/pkg/usecase"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() model.Config {
	return model.Config{
		CacheSize:     3,
		HistorySize:   30,
		TrackedBranch: "main",
		FixKeywords:   []string{"fix", "bug"},
		SkipPaths:     []string{"vendor/"},
	}
}

// ctxAt returns a context whose clock is pinned to at.
func ctxAt(at time.Time) context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return at })
}

// spyRepository returns a mock that forwards every call to repo and records it.
func spyRepository(repo interfaces.FixCacheRepository) *mock.FixCacheRepositoryMock {
	return &mock.FixCacheRepositoryMock{
		GetRepositoryFunc:   repo.GetRepository,
		PutRepositoriesFunc: repo.PutRepositories,
		GetCacheFunc:        repo.GetCache,
		CommitCacheFunc:     repo.CommitCache,
	}
}

func newUseCase(t *testing.T, cfg model.Config, repo interfaces.FixCacheRepository, app interfaces.GitHubApp, options ...usecase.Option) *usecase.UseCase {
	t.Helper()
	return gt.R1(usecase.New(infra.New(
		infra.WithRepository(repo),
		infra.WithGitHubApp(app),
	), cfg, options...)).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		uc := gt.R1(usecase.New(infra.New(infra.WithRepository(memory.New())), testConfig())).NoError(t)
		gt.V(t, uc.Config().CacheSize).Equal(3)
	})

	t.Run("keywords are normalized", func(t *testing.T) {
		cfg := testConfig()
		cfg.FixKeywords = []string{" FIX ", ""}
		uc := gt.R1(usecase.New(infra.New(infra.WithRepository(memory.New())), cfg)).NoError(t)
		gt.V(t, uc.Config().FixKeywords).Equal([]string{"fix"})
	})

	t.Run("invalid cache size", func(t *testing.T) {
		cfg := testConfig()
		cfg.CacheSize = 0
		_, err := usecase.New(infra.New(infra.WithRepository(memory.New())), cfg)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidConfig))
	})

	t.Run("repository is required", func(t *testing.T) {
		_, err := usecase.New(infra.New(), testConfig())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("invalid commit attempts", func(t *testing.T) {
		_, err := usecase.New(infra.New(infra.WithRepository(memory.New())), testConfig(), usecase.WithCommitAttempts(0))
		gt.Error(t, err)
	})
}
