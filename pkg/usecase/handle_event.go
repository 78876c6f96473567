package usecase

import (
	"context"
	"log/slog"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/repository"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleEvent dispatches a normalized webhook event to its handler.
func (x *UseCase) HandleEvent(ctx context.Context, event *model.Event) (err error) {
	defer func() {
		observeEvent(event.Kind, err)
	}()

	switch event.Kind {
	case model.EventInstallation:
		if event.Installation == nil {
			return goerr.Wrap(types.ErrInvalidGitHubData, "installation payload is missing")
		}
		return x.HandleInstallation(ctx, event.InstallID, event.Installation)

	case model.EventPush:
		if event.Push == nil {
			return goerr.Wrap(types.ErrInvalidGitHubData, "push payload is missing")
		}
		return x.HandlePush(ctx, event.Push)

	case model.EventPullRequest:
		if event.PullRequest == nil {
			return goerr.Wrap(types.ErrInvalidGitHubData, "pull request payload is missing")
		}
		return x.HandlePullRequest(ctx, event.InstallID, event.PullRequest)

	default:
		return goerr.Wrap(types.ErrUnsupportedEvent, "unknown event kind", goerr.V("kind", event.Kind))
	}
}

// HandleInstallation registers the repositories of an installation, creates the warning label in
// each of them and warms their caches from history. Removal actions leave stored data untouched.
func (x *UseCase) HandleInstallation(ctx context.Context, installID types.GitHubAppInstallID, ev *model.InstallationEvent) error {
	logger := logging.From(ctx).With(
		slog.Any("installID", installID),
		slog.String("action", string(ev.Action)),
	)

	if !ev.Action.Registers() {
		logger.Info("Repositories removed from installation, keeping stored data",
			slog.Int("count", len(ev.Repositories)),
		)
		return nil
	}

	now := logging.CtxTime(ctx)
	repos := make([]*model.Repository, 0, len(ev.Repositories))
	for _, r := range ev.Repositories {
		repos = append(repos, &model.Repository{
			ID:             r.ID,
			Owner:          r.Owner(),
			Name:           r.Name,
			InstallationID: installID,
			TrackedBranch:  x.cfg.TrackedBranch,
			SkipPaths:      x.cfg.SkipPaths,
			FixKeywords:    x.cfg.FixKeywords,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	if len(repos) == 0 {
		return nil
	}

	for _, chunk := range repository.Chunk(repos, repository.MaxBatchSize) {
		if err := x.clients.Repository().PutRepositories(ctx, chunk); err != nil {
			return goerr.Wrap(err, "failed to register repositories", goerr.V("installID", installID))
		}
	}
	logger.Info("Registered repositories", slog.Int("count", len(repos)))

	client, err := x.clients.GitHubApp().Client(installID)
	if err != nil {
		return goerr.Wrap(err, "failed to build GitHub client", goerr.V("installID", installID))
	}

	for _, repo := range repos {
		if err := client.CreateLabel(ctx, repo, &model.WarningLabel); err != nil {
			return err
		}
		if err := x.WarmCache(ctx, repo, client); err != nil {
			return goerr.Wrap(err, "failed to warm cache", goerr.V("repo", repo.FullName()))
		}
	}

	return nil
}

// HandlePush feeds the files of fix commits pushed to the tracked branch into the cache with a
// single update.
func (x *UseCase) HandlePush(ctx context.Context, ev *model.PushEvent) error {
	logger := logging.From(ctx).With(slog.Any("repoID", ev.RepoID), slog.String("ref", ev.Ref))

	if ev.Ref != x.cfg.TrackedRef() {
		logger.Debug("Ignore push to untracked ref")
		return nil
	}

	repo, err := x.clients.Repository().GetRepository(ctx, ev.RepoID)
	if err != nil {
		return goerr.Wrap(err, "failed to get repository for push", goerr.V("repoID", ev.RepoID))
	}

	files := model.NewFileSet()
	var fixes int
	for _, c := range ev.Commits {
		if !model.IsFixMessage(c.Message, repo.FixKeywords) {
			continue
		}
		fixes++
		files.Add(model.ExtractFiles(c, repo.SkipPaths)...)
	}

	logger.Info("Processed push",
		slog.Int("commits", len(ev.Commits)),
		slog.Int("fix_commits", fixes),
		slog.Int("files", files.Len()),
	)

	return x.Update(ctx, repo.ID, files.Files())
}

// HandlePullRequest annotates a newly opened pull request against the tracked branch when it touches
// cached files. One comment lists every hit and the warning label is added.
func (x *UseCase) HandlePullRequest(ctx context.Context, installID types.GitHubAppInstallID, ev *model.PullRequestEvent) error {
	logger := logging.From(ctx).With(slog.Any("repoID", ev.RepoID), slog.Int("number", ev.Number))

	if ev.Action != "opened" || ev.BaseRef != x.cfg.TrackedBranch {
		logger.Debug("Ignore pull request event",
			slog.String("action", ev.Action),
			slog.String("base", ev.BaseRef),
		)
		return nil
	}

	repo, err := x.clients.Repository().GetRepository(ctx, ev.RepoID)
	if err != nil {
		return goerr.Wrap(err, "failed to get repository for pull request", goerr.V("repoID", ev.RepoID))
	}

	client, err := x.clients.GitHubApp().Client(installID)
	if err != nil {
		return goerr.Wrap(err, "failed to build GitHub client", goerr.V("installID", installID))
	}

	files, err := client.ListPullRequestFiles(ctx, repo, ev.Number)
	if err != nil {
		return err
	}

	cache, err := x.Lookup(ctx, repo.ID)
	if err != nil {
		return err
	}

	hits := collectHits(files, cache)
	pullRequestHits.Observe(float64(len(hits)))
	if len(hits) == 0 {
		logger.Info("No cached files in pull request", slog.Int("files", len(files)))
		return nil
	}

	if err := client.CreateComment(ctx, repo, ev.Number, buildWarningComment(hits)); err != nil {
		return err
	}
	if err := client.AddLabels(ctx, repo, ev.Number, []string{model.WarningLabel.Name}); err != nil {
		return err
	}

	logger.Info("Annotated pull request", slog.Int("hits", len(hits)))
	return nil
}
