package config

import "github.com/aavshr/fixcache/pkg/domain/types"

func NewGitHubAppForTest(id types.GitHubAppID, privateKey types.GitHubAppPrivateKey, privateKeyFile string) GitHubApp {
	return GitHubApp{id: id, privateKey: privateKey, privateKeyFile: privateKeyFile}
}

func (x GitHubApp) LoadPrivateKeyForTest() (types.GitHubAppPrivateKey, error) {
	return x.loadPrivateKey()
}
