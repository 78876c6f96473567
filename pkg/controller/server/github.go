package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/utils/errutil"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// parseGitHubAppEvent validates the signature of a webhook request and converts its payload. It
// returns nil without error for event types the app does not handle. The signature is only checked
// when secret is set.
func parseGitHubAppEvent(r *http.Request, secret types.GitHubAppSecret) (*model.Event, error) {
	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "validating payload", goerr.V("error", err))
	}

	eventType := github.WebHookType(r)
	raw, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook", goerr.V("type", eventType))
	}

	event := githubEventToModel(raw)
	logging.From(r.Context()).Info("Received GitHub App event",
		slog.String("type", eventType),
		slog.Bool("handled", event != nil),
	)

	return event, nil
}

// handleEvent runs the use case for one event. It is called in its own goroutine after the webhook
// response has been written, so failures can only be reported.
func handleEvent(ctx context.Context, uc interfaces.UseCase, event *model.Event) {
	logger := logging.From(ctx).With(slog.String("kind", string(event.Kind)))
	logger.Info("Start handling event")

	if err := uc.HandleEvent(ctx, event); err != nil {
		errutil.HandleError(ctx, "fail to handle GitHub App event", err)
		return
	}

	logger.Info("Event handled")
}

func toGitHubRepos(repos []*github.Repository) []*model.GitHubRepo {
	out := make([]*model.GitHubRepo, 0, len(repos))
	for _, r := range repos {
		out = append(out, &model.GitHubRepo{
			ID:       types.GitHubRepoID(r.GetID()),
			Name:     r.GetName(),
			FullName: r.GetFullName(),
		})
	}
	return out
}

func githubEventToModel(event any) *model.Event {
	switch ev := event.(type) {
	case *github.InstallationEvent:
		action := model.InstallationAction(ev.GetAction())
		if action != model.InstallationCreated && action != model.InstallationDeleted {
			logging.Default().Debug("ignore installation event", slog.String("action", ev.GetAction()))
			return nil
		}
		return &model.Event{
			Kind:      model.EventInstallation,
			InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			Installation: &model.InstallationEvent{
				Action:       action,
				Repositories: toGitHubRepos(ev.Repositories),
			},
		}

	case *github.InstallationRepositoriesEvent:
		action := model.InstallationAction(ev.GetAction())
		var repos []*github.Repository
		switch action {
		case model.InstallationAdded:
			repos = ev.RepositoriesAdded
		case model.InstallationRemoved:
			repos = ev.RepositoriesRemoved
		default:
			logging.Default().Debug("ignore installation_repositories event", slog.String("action", ev.GetAction()))
			return nil
		}
		return &model.Event{
			Kind:      model.EventInstallation,
			InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			Installation: &model.InstallationEvent{
				Action:       action,
				Repositories: toGitHubRepos(repos),
			},
		}

	case *github.PushEvent:
		commits := make([]*model.Commit, 0, len(ev.Commits))
		for _, c := range ev.Commits {
			commits = append(commits, &model.Commit{
				SHA:      c.GetID(),
				Message:  c.GetMessage(),
				Added:    c.Added,
				Modified: c.Modified,
				Deleted:  c.Removed,
			})
		}
		return &model.Event{
			Kind:      model.EventPush,
			InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			Push: &model.PushEvent{
				RepoID:  types.GitHubRepoID(ev.GetRepo().GetID()),
				Ref:     ev.GetRef(),
				Commits: commits,
			},
		}

	case *github.PullRequestEvent:
		return &model.Event{
			Kind:      model.EventPullRequest,
			InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			PullRequest: &model.PullRequestEvent{
				RepoID:  types.GitHubRepoID(ev.GetRepo().GetID()),
				Action:  ev.GetAction(),
				Number:  ev.GetPullRequest().GetNumber(),
				BaseRef: ev.GetPullRequest().GetBase().GetRef(),
			},
		}

	default:
		logging.Default().Debug("unsupported event", slog.String("type", fmt.Sprintf("%T", event)))
		return nil
	}
}
