package config

import (
	"log/slog"
	"os"
	"slices"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	defaultCacheSize     = 20
	defaultHistorySize   = 90
	defaultTrackedBranch = "main"
)

var defaultFixKeywords = []string{"fix", "bug"}

// FixCache is the static fix cache configuration. Values come from an optional YAML file and
// flags set explicitly on the command line (or by env) take precedence over the file.
type FixCache struct {
	configFile    string
	cacheSize     int
	historySize   int
	trackedBranch string
	fixKeywords   []string
	skipPaths     []string
}

const (
	flagCacheSize     = "cache-size"
	flagHistorySize   = "history-size"
	flagTrackedBranch = "tracked-branch"
	flagFixKeyword    = "fix-keyword"
	flagSkipPath      = "skip-path"
)

func (x *FixCache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Fix cache config file (YAML)",
			Category:    "Fix cache",
			Destination: &x.configFile,
			Sources:     cli.EnvVars("FIXCACHE_CONFIG"),
		},
		&cli.IntFlag{
			Name:        flagCacheSize,
			Usage:       "Number of files kept in the cache of each repository",
			Category:    "Fix cache",
			Value:       defaultCacheSize,
			Destination: &x.cacheSize,
			Sources:     cli.EnvVars("FIXCACHE_CACHE_SIZE"),
		},
		&cli.IntFlag{
			Name:        flagHistorySize,
			Usage:       "Days of commit history scanned when a repository is registered",
			Category:    "Fix cache",
			Value:       defaultHistorySize,
			Destination: &x.historySize,
			Sources:     cli.EnvVars("FIXCACHE_HISTORY_SIZE"),
		},
		&cli.StringFlag{
			Name:        flagTrackedBranch,
			Usage:       "Branch whose pushes feed the cache and whose pull requests are annotated",
			Category:    "Fix cache",
			Value:       defaultTrackedBranch,
			Destination: &x.trackedBranch,
			Sources:     cli.EnvVars("FIXCACHE_TRACKED_BRANCH"),
		},
		&cli.StringSliceFlag{
			Name:        flagFixKeyword,
			Usage:       "Keyword marking a commit message as a fix (case-insensitive, repeatable)",
			Category:    "Fix cache",
			Value:       slices.Clone(defaultFixKeywords),
			Destination: &x.fixKeywords,
			Sources:     cli.EnvVars("FIXCACHE_FIX_KEYWORDS"),
		},
		&cli.StringSliceFlag{
			Name:        flagSkipPath,
			Usage:       "Files whose path contains this substring are never cached (repeatable)",
			Category:    "Fix cache",
			Destination: &x.skipPaths,
			Sources:     cli.EnvVars("FIXCACHE_SKIP_PATHS"),
		},
	}
}

// Build merges defaults, the config file and explicitly set flags into a validated model.Config.
func (x *FixCache) Build(c *cli.Command) (model.Config, error) {
	cfg := model.Config{
		CacheSize:     defaultCacheSize,
		HistorySize:   defaultHistorySize,
		TrackedBranch: defaultTrackedBranch,
		FixKeywords:   slices.Clone(defaultFixKeywords),
	}

	if x.configFile != "" {
		if err := loadConfigFile(x.configFile, &cfg); err != nil {
			return model.Config{}, err
		}
	}

	if c.IsSet(flagCacheSize) {
		cfg.CacheSize = x.cacheSize
	}
	if c.IsSet(flagHistorySize) {
		cfg.HistorySize = x.historySize
	}
	if c.IsSet(flagTrackedBranch) {
		cfg.TrackedBranch = x.trackedBranch
	}
	if c.IsSet(flagFixKeyword) {
		cfg.FixKeywords = x.fixKeywords
	}
	if c.IsSet(flagSkipPath) {
		cfg.SkipPaths = x.skipPaths
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *model.Config) error {
	fd, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open config file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	decoder := yaml.NewDecoder(fd)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return goerr.Wrap(types.ErrInvalidConfig, "failed to decode config file",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}
	return nil
}

func (x *FixCache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("configFile", x.configFile),
		slog.Int("cacheSize", x.cacheSize),
		slog.Int("historySize", x.historySize),
		slog.String("trackedBranch", x.trackedBranch),
		slog.Any("fixKeywords", x.fixKeywords),
		slog.Any("skipPaths", x.skipPaths),
	)
}
