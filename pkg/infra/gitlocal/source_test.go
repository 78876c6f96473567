package gitlocal_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/infra/gitlocal"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"
)

type testRepo struct {
	t    *testing.T
	dir  string
	repo *git.Repository
	wt   *git.Worktree
}

func newTestRepo(t *testing.T) *testRepo {
	dir := t.TempDir()
	repo := gt.R1(git.PlainInit(dir, false)).NoError(t)
	wt := gt.R1(repo.Worktree()).NoError(t)
	return &testRepo{t: t, dir: dir, repo: repo, wt: wt}
}

func (x *testRepo) write(name, content string) {
	path := filepath.Join(x.dir, name)
	gt.NoError(x.t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(x.t, os.WriteFile(path, []byte(content), 0600))
	gt.R1(x.wt.Add(name)).NoError(x.t)
}

func (x *testRepo) remove(name string) {
	gt.R1(x.wt.Remove(name)).NoError(x.t)
}

func (x *testRepo) commit(msg string, when time.Time) string {
	sig := &object.Signature{Name: "Test User", Email: "test@example.com", When: when}
	hash := gt.R1(x.wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig})).NoError(x.t)
	return hash.String()
}

func TestSource(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := newTestRepo(t)

	repo.write("main.go", "package main")
	repo.write("util/helper.go", "package util")
	root := repo.commit("initial commit", base)

	repo.write("main.go", "package main\n\nfunc main() {}")
	repo.write("util/new.go", "package util")
	repo.remove("util/helper.go")
	fix := repo.commit("fix: crash on start", base.Add(48*time.Hour))

	src := gt.R1(gitlocal.Open(repo.dir)).NoError(t)
	ctx := context.Background()
	meta := &model.Repository{Owner: "local", Name: "test"}

	t.Run("ListCommits returns commits since cutoff", func(t *testing.T) {
		commits := gt.R1(src.ListCommits(ctx, meta, "master", base.Add(24*time.Hour))).NoError(t)
		gt.A(t, commits).Length(1)
		gt.V(t, commits[0].SHA).Equal(fix)
		gt.V(t, commits[0].Parents).Equal(1)

		all := gt.R1(src.ListCommits(ctx, meta, "master", base.Add(-time.Hour))).NoError(t)
		gt.A(t, all).Length(2)
		gt.V(t, all[1].SHA).Equal(root)
	})

	t.Run("GetCommit of root lists every file as added", func(t *testing.T) {
		commit := gt.R1(src.GetCommit(ctx, meta, root)).NoError(t)
		gt.A(t, commit.Added).Length(2)
		gt.A(t, commit.Modified).Length(0)
	})

	t.Run("GetCommit diffs against first parent", func(t *testing.T) {
		commit := gt.R1(src.GetCommit(ctx, meta, fix)).NoError(t)
		gt.V(t, commit.Added).Equal([]string{"util/new.go"})
		gt.V(t, commit.Modified).Equal([]string{"main.go"})
		gt.V(t, commit.Deleted).Equal([]string{"util/helper.go"})
		gt.True(t, model.IsFixMessage(commit.Message, []string{"fix"}))
	})

	t.Run("unknown branch", func(t *testing.T) {
		_, err := src.ListCommits(ctx, meta, "no-such-branch", base)
		gt.Error(t, err)
	})
}

func TestRemoteURL(t *testing.T) {
	repo := newTestRepo(t)
	src := gt.R1(gitlocal.Open(repo.dir)).NoError(t)

	url := gt.R1(src.RemoteURL("origin")).NoError(t)
	gt.V(t, url).Equal("")

	gt.R1(repo.repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:aavshr/fixcache.git"},
	})).NoError(t)

	url = gt.R1(src.RemoteURL("origin")).NoError(t)
	gt.V(t, url).Equal("git@github.com:aavshr/fixcache.git")
}
