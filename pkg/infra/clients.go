package infra

import (
	"github.com/aavshr/fixcache/pkg/domain/interfaces"
)

// Clients bundles the external dependencies of the use cases.
type Clients struct {
	githubApp  interfaces.GitHubApp
	repository interfaces.FixCacheRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) Repository() interfaces.FixCacheRepository {
	return x.repository
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithRepository(repo interfaces.FixCacheRepository) Option {
	return func(x *Clients) {
		x.repository = repo
	}
}
