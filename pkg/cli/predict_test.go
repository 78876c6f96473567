package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aavshr/fixcache/pkg/cli"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"
)

func commitFiles(t *testing.T, dir string, wt *git.Worktree, msg string, when time.Time, files ...string) {
	t.Helper()
	for _, name := range files {
		path := filepath.Join(dir, name)
		gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		gt.NoError(t, os.WriteFile(path, []byte(msg), 0600))
		gt.R1(wt.Add(name)).NoError(t)
	}
	sig := &object.Signature{Name: "Test User", Email: "test@example.com", When: when}
	gt.R1(wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig})).NoError(t)
}

func TestRunPredict(t *testing.T) {
	dir := t.TempDir()
	repo := gt.R1(git.PlainInit(dir, false)).NoError(t)
	wt := gt.R1(repo.Worktree()).NoError(t)

	now := time.Now()
	commitFiles(t, dir, wt, "initial import", now.Add(-72*time.Hour), "main.go", "vendor/lib.go")
	commitFiles(t, dir, wt, "Fix crash in parser", now.Add(-48*time.Hour), "parser.go", "vendor/lib.go")
	commitFiles(t, dir, wt, "add feature", now.Add(-24*time.Hour), "feature.go")
	commitFiles(t, dir, wt, "bug: nil check", now.Add(-time.Hour), "main.go", "parser.go")

	cfg := model.Config{
		CacheSize:     10,
		HistorySize:   30,
		TrackedBranch: "master",
		FixKeywords:   []string{"fix", "bug"},
		SkipPaths:     []string{"vendor/"},
	}

	set := gt.R1(cli.RunPredict(context.Background(), dir, cfg)).NoError(t)
	hits := set.Lookup()
	gt.V(t, len(hits)).Equal(2)
	gt.V(t, hits["parser.go"]).Equal(1)
	gt.V(t, hits["main.go"]).Equal(1)

	t.Run("cache size bounds the prediction", func(t *testing.T) {
		cfg := cfg
		cfg.CacheSize = 1
		set := gt.R1(cli.RunPredict(context.Background(), dir, cfg)).NoError(t)
		gt.A(t, set.Entries).Length(1)
	})

	t.Run("not a git repository", func(t *testing.T) {
		_, err := cli.RunPredict(context.Background(), t.TempDir(), cfg)
		gt.Error(t, err)
	})
}
