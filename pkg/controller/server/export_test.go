package server

import "github.com/aavshr/fixcache/pkg/domain/model"

// Test helpers - exported for testing
func GitHubEventToModelForTest(event any) *model.Event {
	return githubEventToModel(event)
}
