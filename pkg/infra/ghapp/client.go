package ghapp

import (
	"net/http"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// App builds GitHub API clients authenticated as an installation of the GitHub App.
type App struct {
	appID     types.GitHubAppID
	pem       types.GitHubAppPrivateKey
	transport http.RoundTripper
}

var _ interfaces.GitHubApp = (*App)(nil)

type Option func(*App)

// WithTransport replaces the base transport that installation tokens are layered on.
func WithTransport(tr http.RoundTripper) Option {
	return func(x *App) {
		x.transport = tr
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*App, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	app := &App{
		appID:     appID,
		pem:       pem,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(app)
	}

	return app, nil
}

// Client returns a client for one installation. It is built per event and not cached.
func (x *App) Client(installID types.GitHubAppInstallID) (interfaces.GitHubClient, error) {
	itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport",
			goerr.V("appID", x.appID),
			goerr.V("installID", installID),
		)
	}

	gh := github.NewClient(&http.Client{Transport: itr})
	return newInstallationClient(gh, installID), nil
}
