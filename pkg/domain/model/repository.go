package model

import (
	"strings"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/types"
)

// Repository is the metadata of a GitHub repository the app is installed on.
type Repository struct {
	ID             types.GitHubRepoID
	Owner          string
	Name           string
	InstallationID types.GitHubAppInstallID
	TrackedBranch  string
	SkipPaths      []string
	FixKeywords    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (x *Repository) FullName() string {
	return x.Owner + "/" + x.Name
}

// GitHubRepo is a repository as it appears in an installation payload.
type GitHubRepo struct {
	ID       types.GitHubRepoID
	Name     string
	FullName string
}

// Owner returns the owner part of FullName ("owner/name").
func (x *GitHubRepo) Owner() string {
	owner, _, _ := strings.Cut(x.FullName, "/")
	return owner
}
