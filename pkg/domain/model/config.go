package model

import (
	"strings"

	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Config is the static fix cache configuration shared by every registered repository.
type Config struct {
	CacheSize     int      `yaml:"cache_size"`
	HistorySize   int      `yaml:"history_size"`
	TrackedBranch string   `yaml:"tracked_branch"`
	FixKeywords   []string `yaml:"fix_keywords"`
	SkipPaths     []string `yaml:"skip_paths"`
}

func (x *Config) Validate() error {
	if x.CacheSize <= 0 {
		return goerr.Wrap(types.ErrInvalidConfig, "cache size must be positive", goerr.V("cacheSize", x.CacheSize))
	}
	if x.HistorySize < 0 {
		return goerr.Wrap(types.ErrInvalidConfig, "history size must not be negative", goerr.V("historySize", x.HistorySize))
	}
	if x.TrackedBranch == "" {
		return goerr.Wrap(types.ErrInvalidConfig, "tracked branch is empty")
	}
	return nil
}

// Normalize lowercases keywords and drops empty keywords and skip paths.
func (x *Config) Normalize() {
	var keywords []string
	for _, kw := range x.FixKeywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	x.FixKeywords = keywords

	var skip []string
	for _, p := range x.SkipPaths {
		if p = strings.TrimSpace(p); p != "" {
			skip = append(skip, p)
		}
	}
	x.SkipPaths = skip
}

// TrackedRef is the full git ref of the tracked branch.
func (x *Config) TrackedRef() string {
	return "refs/heads/" + x.TrackedBranch
}
