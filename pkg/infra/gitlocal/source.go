package gitlocal

import (
	"context"
	"errors"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	"github.com/m-mizutani/goerr/v2"
)

// Source reads commit history from a local git repository. The repo argument of its methods is only
// used for error context.
type Source struct {
	repo *git.Repository
}

var _ interfaces.CommitSource = (*Source)(nil)

// Open opens the git repository at path.
func Open(path string) (*Source, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}
	return &Source{repo: repo}, nil
}

// Clone clones url into dir and opens it.
func Clone(ctx context.Context, url, dir string) (*Source, error) {
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{URL: url})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to clone git repository",
			goerr.V("url", url),
			goerr.V("dir", dir),
		)
	}
	return &Source{repo: repo}, nil
}

// RemoteURL returns the first URL of the named remote, or an empty string if the remote does not
// exist.
func (x *Source) RemoteURL(name string) (string, error) {
	remote, err := x.repo.Remote(name)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return "", nil
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote", goerr.V("name", name))
	}
	if urls := remote.Config().URLs; len(urls) > 0 {
		return urls[0], nil
	}
	return "", nil
}

// resolveBranch looks up the local branch first and falls back to the origin remote branch.
func (x *Source) resolveBranch(branch string) (*plumbing.Reference, error) {
	ref, err := x.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err == nil {
		return ref, nil
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, goerr.Wrap(err, "failed to resolve branch", goerr.V("branch", branch))
	}

	ref, err = x.repo.Reference(plumbing.NewRemoteReferenceName("origin", branch), true)
	if err != nil {
		return nil, goerr.Wrap(err, "branch not found", goerr.V("branch", branch))
	}
	return ref, nil
}

func (x *Source) ListCommits(ctx context.Context, repo *model.Repository, branch string, since time.Time) ([]*model.Commit, error) {
	ref, err := x.resolveBranch(branch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("repo", repo.FullName()))
	}

	iter, err := x.repo.Log(&git.LogOptions{
		From:  ref.Hash(),
		Since: &since,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit log",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
		)
	}
	defer iter.Close()

	var commits []*model.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commits = append(commits, &model.Commit{
			SHA:     c.Hash.String(),
			Message: c.Message,
			Parents: c.NumParents(),
		})
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to iterate commits",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
		)
	}

	return commits, nil
}

func (x *Source) GetCommit(ctx context.Context, repo *model.Repository, sha string) (*model.Commit, error) {
	c, err := x.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit object",
			goerr.V("repo", repo.FullName()),
			goerr.V("sha", sha),
		)
	}

	commit := &model.Commit{
		SHA:     c.Hash.String(),
		Message: c.Message,
		Parents: c.NumParents(),
	}

	tree, err := c.Tree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit tree", goerr.V("sha", sha))
	}

	// Root commit adds every file of its tree
	if c.NumParents() == 0 {
		err := tree.Files().ForEach(func(f *object.File) error {
			commit.Added = append(commit.Added, f.Name)
			return nil
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate files", goerr.V("sha", sha))
		}
		return commit, nil
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get parent commit", goerr.V("sha", sha))
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get parent tree", goerr.V("sha", sha))
	}

	changes, err := parentTree.DiffContext(ctx, tree)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get diff", goerr.V("sha", sha))
	}

	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get change action", goerr.V("sha", sha))
		}

		switch action {
		case merkletrie.Insert:
			commit.Added = append(commit.Added, change.To.Name)
		case merkletrie.Delete:
			commit.Deleted = append(commit.Deleted, change.From.Name)
		case merkletrie.Modify:
			commit.Modified = append(commit.Modified, change.To.Name)
		}
	}

	return commit, nil
}
