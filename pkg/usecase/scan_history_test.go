package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/mock"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/repository/memory"
	"github.com/aavshr/fixcache/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func testRepository() *model.Repository {
	cfg := testConfig()
	return &model.Repository{
		ID:            testRepoID,
		Owner:         "octo",
		Name:          "demo",
		TrackedBranch: cfg.TrackedBranch,
		SkipPaths:     cfg.SkipPaths,
		FixKeywords:   cfg.FixKeywords,
	}
}

// historySource returns a commit source serving commits and the file lists in details.
func historySource(t *testing.T, commits []*model.Commit, details map[string]*model.Commit) *mock.CommitSourceMock {
	return &mock.CommitSourceMock{
		ListCommitsFunc: func(ctx context.Context, repo *model.Repository, branch string, since time.Time) ([]*model.Commit, error) {
			return commits, nil
		},
		GetCommitFunc: func(ctx context.Context, repo *model.Repository, sha string) (*model.Commit, error) {
			detail, ok := details[sha]
			if !ok {
				t.Errorf("unexpected GetCommit: %s", sha)
				return nil, errors.New("unknown commit")
			}
			return detail, nil
		},
	}
}

var (
	historyCommits = []*model.Commit{
		{SHA: "c4", Message: "Bug: off by one", Parents: 1},
		{SHA: "c3", Message: "add feature", Parents: 1},
		{SHA: "c2", Message: "Merge branch 'fix-x'", Parents: 2},
		{SHA: "c1", Message: "fix crash", Parents: 1},
	}
	historyDetails = map[string]*model.Commit{
		"c4": {SHA: "c4", Modified: []string{"b.go", "vendor/lib.go"}},
		"c1": {SHA: "c1", Added: []string{"c.go"}, Modified: []string{"b.go"}, Deleted: []string{"gone.go"}},
	}
)

func TestScanHistory(t *testing.T) {
	src := historySource(t, historyCommits, historyDetails)
	uc := newUseCase(t, testConfig(), memory.New(), nil, usecase.WithFetchConcurrency(2))

	files, err := uc.ScanHistory(ctxAt(baseTime), testRepository(), src)
	gt.NoError(t, err)

	// One occurrence per fix commit, in listing order
	gt.V(t, files).Equal([]string{"b.go", "c.go", "b.go"})

	calls := src.ListCommitsCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Branch).Equal("main")
	gt.True(t, calls[0].Since.Equal(baseTime.AddDate(0, 0, -30)))

	// Merge and non-fix commits are never fetched
	gt.A(t, src.GetCommitCalls()).Length(2)
}

func TestScanHistoryAbortsOnError(t *testing.T) {
	src := historySource(t, historyCommits, historyDetails)
	src.GetCommitFunc = func(ctx context.Context, repo *model.Repository, sha string) (*model.Commit, error) {
		return nil, errors.New("api failure")
	}
	uc := newUseCase(t, testConfig(), memory.New(), nil)

	_, err := uc.ScanHistory(ctxAt(baseTime), testRepository(), src)
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("api failure")
}

func TestWarmCache(t *testing.T) {
	src := historySource(t, historyCommits, historyDetails)
	uc := newUseCase(t, testConfig(), memory.New(), nil)
	ctx := ctxAt(baseTime)

	gt.NoError(t, uc.WarmCache(ctx, testRepository(), src))

	// Initialize counts distinct files once
	hits := gt.R1(uc.Lookup(ctx, testRepoID)).NoError(t)
	gt.V(t, hits).Equal(map[string]int{"b.go": 1, "c.go": 1})
}
