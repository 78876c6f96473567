package ghapp

import (
	"net/url"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/google/go-github/v53/github"
)

// NewClientForTest returns an installation client talking to baseURL without authentication.
func NewClientForTest(baseURL string) (interfaces.GitHubClient, error) {
	u, err := url.Parse(baseURL + "/")
	if err != nil {
		return nil, err
	}

	gh := github.NewClient(nil)
	gh.BaseURL = u
	return newInstallationClient(gh, 1), nil
}
