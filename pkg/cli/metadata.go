package cli

import (
	"net/url"
	"path/filepath"
	"strings"
)

// isRemoteLocation reports whether a predict target should be cloned rather than opened in place.
func isRemoteLocation(location string) bool {
	for _, prefix := range []string{"https://", "http://", "ssh://", "git@", "file://"} {
		if strings.HasPrefix(location, prefix) {
			return true
		}
	}
	return false
}

// parseGitHubRemote extracts owner and repository name from a GitHub remote URL such as
// git@github.com:owner/repo.git or https://github.com/owner/repo.git.
func parseGitHubRemote(remote string) (owner, name string, ok bool) {
	var path string
	switch {
	case strings.HasPrefix(remote, "git@github.com:"):
		path = strings.TrimPrefix(remote, "git@github.com:")

	default:
		u, err := url.Parse(remote)
		if err != nil || u.Host != "github.com" {
			return "", "", false
		}
		path = strings.TrimPrefix(u.Path, "/")
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	owner, name, found := strings.Cut(path, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}

// repoName names a predict target for display. GitHub remotes give owner and name, anything else
// falls back to the last path element of the location.
func repoName(location, remote string) (owner, name string) {
	if owner, name, ok := parseGitHubRemote(remote); ok {
		return owner, name
	}
	if owner, name, ok := parseGitHubRemote(location); ok {
		return owner, name
	}

	base := strings.TrimSuffix(filepath.Base(strings.TrimRight(location, "/")), ".git")
	if abs, err := filepath.Abs(location); err == nil && !isRemoteLocation(location) {
		base = filepath.Base(abs)
	}
	return "local", base
}
