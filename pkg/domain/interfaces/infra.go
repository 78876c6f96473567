package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubApp GitHubClient CommitSource

import (
	"context"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
)

// GitHubApp builds GitHub API clients authenticated as one installation of the app. A client is
// meant to live for the processing of a single event.
type GitHubApp interface {
	Client(installID types.GitHubAppInstallID) (GitHubClient, error)
}

// CommitSource provides the commit history of a repository.
type CommitSource interface {
	// ListCommits returns commits on branch made since the given time, newest first, with Message
	// and Parents set. File lists are not populated.
	ListCommits(ctx context.Context, repo *model.Repository, branch string, since time.Time) ([]*model.Commit, error)
	// GetCommit returns a commit with its file lists.
	GetCommit(ctx context.Context, repo *model.Repository, sha string) (*model.Commit, error)
}

type GitHubClient interface {
	CommitSource

	ListPullRequestFiles(ctx context.Context, repo *model.Repository, number int) ([]string, error)
	CreateLabel(ctx context.Context, repo *model.Repository, label *model.Label) error
	AddLabels(ctx context.Context, repo *model.Repository, number int, labels []string) error
	CreateComment(ctx context.Context, repo *model.Repository, number int, body string) error
}
