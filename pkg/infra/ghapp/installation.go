package ghapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

const perPage = 100

type installationClient struct {
	gh        *github.Client
	installID types.GitHubAppInstallID
}

var _ interfaces.GitHubClient = (*installationClient)(nil)

func newInstallationClient(gh *github.Client, installID types.GitHubAppInstallID) *installationClient {
	return &installationClient{
		gh:        gh,
		installID: installID,
	}
}

func (x *installationClient) ListCommits(ctx context.Context, repo *model.Repository, branch string, since time.Time) ([]*model.Commit, error) {
	opts := &github.CommitsListOptions{
		SHA:         branch,
		Since:       since,
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var commits []*model.Commit
	for {
		result, resp, err := x.gh.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list commits",
				goerr.V("repo", repo.FullName()),
				goerr.V("branch", branch),
				goerr.V("since", since),
			)
		}

		for _, c := range result {
			commits = append(commits, &model.Commit{
				SHA:     c.GetSHA(),
				Message: c.GetCommit().GetMessage(),
				Parents: len(c.Parents),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("Listed commits",
		slog.String("repo", repo.FullName()),
		slog.String("branch", branch),
		slog.Int("count", len(commits)),
	)

	return commits, nil
}

func (x *installationClient) GetCommit(ctx context.Context, repo *model.Repository, sha string) (*model.Commit, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var commit *model.Commit
	for {
		result, resp, err := x.gh.Repositories.GetCommit(ctx, repo.Owner, repo.Name, sha, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get commit",
				goerr.V("repo", repo.FullName()),
				goerr.V("sha", sha),
			)
		}

		if commit == nil {
			commit = &model.Commit{
				SHA:     result.GetSHA(),
				Message: result.GetCommit().GetMessage(),
				Parents: len(result.Parents),
			}
		}
		for _, file := range result.Files {
			addCommitFile(commit, file)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return commit, nil
}

// addCommitFile sorts a changed file into the added, modified or deleted list of commit.
// https://docs.github.com/en/rest/commits/commits#get-a-commit
func addCommitFile(commit *model.Commit, file *github.CommitFile) {
	name := file.GetFilename()
	switch file.GetStatus() {
	case "added":
		commit.Added = append(commit.Added, name)
	case "removed":
		commit.Deleted = append(commit.Deleted, name)
	case "modified", "changed", "renamed", "copied":
		commit.Modified = append(commit.Modified, name)
	}
}

func (x *installationClient) ListPullRequestFiles(ctx context.Context, repo *model.Repository, number int) ([]string, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var files []string
	for {
		result, resp, err := x.gh.PullRequests.ListFiles(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull request files",
				goerr.V("repo", repo.FullName()),
				goerr.V("number", number),
			)
		}

		for _, file := range result {
			files = append(files, file.GetFilename())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}

func (x *installationClient) CreateLabel(ctx context.Context, repo *model.Repository, label *model.Label) error {
	_, _, err := x.gh.Issues.CreateLabel(ctx, repo.Owner, repo.Name, &github.Label{
		Name:        github.String(label.Name),
		Color:       github.String(label.Color),
		Description: github.String(label.Description),
	})
	if err != nil {
		if isAlreadyExists(err) {
			logging.From(ctx).Debug("Label already exists",
				slog.String("repo", repo.FullName()),
				slog.String("label", label.Name),
			)
			return nil
		}
		return goerr.Wrap(err, "failed to create label",
			goerr.V("repo", repo.FullName()),
			goerr.V("label", label.Name),
		)
	}

	return nil
}

func isAlreadyExists(err error) bool {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}
	for _, e := range ghErr.Errors {
		if e.Code == "already_exists" {
			return true
		}
	}
	return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusUnprocessableEntity
}

func (x *installationClient) AddLabels(ctx context.Context, repo *model.Repository, number int, labels []string) error {
	if _, _, err := x.gh.Issues.AddLabelsToIssue(ctx, repo.Owner, repo.Name, number, labels); err != nil {
		return goerr.Wrap(err, "failed to add labels",
			goerr.V("repo", repo.FullName()),
			goerr.V("number", number),
			goerr.V("labels", labels),
		)
	}
	return nil
}

func (x *installationClient) CreateComment(ctx context.Context, repo *model.Repository, number int, body string) error {
	comment := &github.IssueComment{Body: github.String(body)}
	if _, _, err := x.gh.Issues.CreateComment(ctx, repo.Owner, repo.Name, number, comment); err != nil {
		return goerr.Wrap(err, "failed to create comment",
			goerr.V("repo", repo.FullName()),
			goerr.V("number", number),
		)
	}
	return nil
}
