package model_test

import (
	"testing"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestIsFixMessage(t *testing.T) {
	testCases := []struct {
		name     string
		message  string
		keywords []string
		want     bool
	}{
		{name: "keyword as prefix", message: "Fixed null pointer in parser", keywords: []string{"fix"}, want: true},
		{name: "no keyword matches", message: "Add new feature", keywords: []string{"fix", "bug"}, want: false},
		{name: "case insensitive keyword", message: "resolve BUG in cache", keywords: []string{"Bug"}, want: true},
		{name: "empty keyword set", message: "fix everything", keywords: nil, want: false},
		{name: "empty keyword ignored", message: "Add new feature", keywords: []string{""}, want: false},
		{name: "substring inside word", message: "prefix handling", keywords: []string{"fix"}, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, model.IsFixMessage(tc.message, tc.keywords)).Equal(tc.want)
		})
	}
}

func TestExtractFiles(t *testing.T) {
	t.Run("skip paths and added files", func(t *testing.T) {
		commit := &model.Commit{
			Modified: []string{"a/b.go", "vendor/x.go"},
			Added:    []string{"c.go"},
		}
		files := model.ExtractFiles(commit, []string{"vendor/"})
		gt.A(t, files).Length(2)
		gt.A(t, files).Have("a/b.go")
		gt.A(t, files).Have("c.go")
	})

	t.Run("added before modified without duplicates", func(t *testing.T) {
		commit := &model.Commit{
			Added:    []string{"new.go", "dup.go"},
			Modified: []string{"dup.go", "old.go", ""},
			Deleted:  []string{"gone.go"},
		}
		gt.V(t, model.ExtractFiles(commit, nil)).Equal([]string{"new.go", "dup.go", "old.go"})
	})

	t.Run("empty skip path does not drop everything", func(t *testing.T) {
		commit := &model.Commit{Modified: []string{"main.go"}}
		gt.V(t, model.ExtractFiles(commit, []string{""})).Equal([]string{"main.go"})
	})
}

func TestFileSet(t *testing.T) {
	set := model.NewFileSet()
	set.Add("b.go", "a.go")
	set.Add("b.go", "c.go")

	gt.V(t, set.Len()).Equal(3)
	gt.True(t, set.Has("a.go"))
	gt.False(t, set.Has("d.go"))
	gt.V(t, set.Files()).Equal([]string{"b.go", "a.go", "c.go"})

	// Files returns a copy
	files := set.Files()
	files[0] = "changed"
	gt.V(t, set.Files()[0]).Equal("b.go")
}

func TestCommitIsMerge(t *testing.T) {
	gt.False(t, (&model.Commit{Parents: 1}).IsMerge())
	gt.True(t, (&model.Commit{Parents: 2}).IsMerge())
}
