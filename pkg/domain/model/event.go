package model

import (
	"github.com/aavshr/fixcache/pkg/domain/types"
)

// EventKind is the kind of a webhook event handled by the app.
type EventKind string

const (
	EventInstallation EventKind = "installation"
	EventPush         EventKind = "push"
	EventPullRequest  EventKind = "pull_request"
)

// Event is a webhook event normalized from the GitHub payload. Exactly one of Installation, Push and
// PullRequest is set, matching Kind.
type Event struct {
	Kind      EventKind
	InstallID types.GitHubAppInstallID

	Installation *InstallationEvent
	Push         *PushEvent
	PullRequest  *PullRequestEvent
}

type InstallationAction string

const (
	InstallationCreated InstallationAction = "created"
	InstallationAdded   InstallationAction = "added"
	InstallationDeleted InstallationAction = "deleted"
	InstallationRemoved InstallationAction = "removed"
)

// Registers reports whether the action adds repositories to the app.
func (x InstallationAction) Registers() bool {
	return x == InstallationCreated || x == InstallationAdded
}

type InstallationEvent struct {
	Action       InstallationAction
	Repositories []*GitHubRepo
}

type PushEvent struct {
	RepoID  types.GitHubRepoID
	Ref     string
	Commits []*Commit
}

type PullRequestEvent struct {
	RepoID  types.GitHubRepoID
	Action  string
	Number  int
	BaseRef string
}
