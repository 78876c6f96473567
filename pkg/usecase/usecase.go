package usecase

import (
	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/infra"
	"github.com/aavshr/fixcache/pkg/utils/keylock"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultCommitAttempts   = 5
	defaultFetchConcurrency = 8
)

type UseCase struct {
	clients *infra.Clients
	cfg     model.Config

	// locks serializes cache read-modify-write per repository within this process
	locks            *keylock.Map[types.GitHubRepoID]
	commitAttempts   int
	fetchConcurrency int
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithCommitAttempts sets how many times a cache update is recomputed after a conflicting write.
func WithCommitAttempts(n int) Option {
	return func(x *UseCase) {
		x.commitAttempts = n
	}
}

// WithFetchConcurrency sets how many commits the history scan fetches in parallel.
func WithFetchConcurrency(n int) Option {
	return func(x *UseCase) {
		x.fetchConcurrency = n
	}
}

// New validates cfg and returns a UseCase. The repository client is required.
func New(clients *infra.Clients, cfg model.Config, options ...Option) (*UseCase, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clients.Repository() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository is not configured")
	}

	uc := &UseCase{
		clients:          clients,
		cfg:              cfg,
		locks:            keylock.New[types.GitHubRepoID](),
		commitAttempts:   defaultCommitAttempts,
		fetchConcurrency: defaultFetchConcurrency,
	}
	for _, opt := range options {
		opt(uc)
	}

	if uc.commitAttempts < 1 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "commit attempts must be positive", goerr.V("value", uc.commitAttempts))
	}
	if uc.fetchConcurrency < 1 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "fetch concurrency must be positive", goerr.V("value", uc.fetchConcurrency))
	}

	return uc, nil
}

// Config returns the normalized configuration.
func (x *UseCase) Config() model.Config {
	return x.cfg
}
