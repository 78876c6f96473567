package model

import "strings"

// Commit is a commit observed from a push payload or the commit API. It is never persisted.
type Commit struct {
	SHA      string
	Message  string
	Parents  int
	Added    []string
	Modified []string
	Deleted  []string
}

// IsMerge reports whether the commit has more than one parent.
func (x *Commit) IsMerge() bool {
	return x.Parents > 1
}

// IsFixMessage reports whether message contains any of keywords, ignoring case. An empty keyword
// set never matches.
func IsFixMessage(message string, keywords []string) bool {
	msg := strings.ToLower(message)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(msg, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ExtractFiles returns the added and modified paths of commit without duplicates, dropping any path
// that contains one of skipPaths. Deleted paths are never returned.
func ExtractFiles(commit *Commit, skipPaths []string) []string {
	set := NewFileSet()
	for _, paths := range [][]string{commit.Added, commit.Modified} {
		for _, p := range paths {
			if p == "" || isSkipped(p, skipPaths) {
				continue
			}
			set.Add(p)
		}
	}
	return set.Files()
}

func isSkipped(path string, skipPaths []string) bool {
	for _, s := range skipPaths {
		if s != "" && strings.Contains(path, s) {
			return true
		}
	}
	return false
}

// FileSet is a set of file paths that remembers insertion order.
type FileSet struct {
	index map[string]struct{}
	files []string
}

func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]struct{})}
}

func (x *FileSet) Add(paths ...string) {
	for _, p := range paths {
		if _, ok := x.index[p]; ok {
			continue
		}
		x.index[p] = struct{}{}
		x.files = append(x.files, p)
	}
}

func (x *FileSet) Has(path string) bool {
	_, ok := x.index[path]
	return ok
}

func (x *FileSet) Len() int {
	return len(x.files)
}

// Files returns paths in insertion order.
func (x *FileSet) Files() []string {
	return append([]string(nil), x.files...)
}
