package config

import (
	"context"
	"log/slog"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/repository/firestore"
	"github.com/aavshr/fixcache/pkg/repository/memory"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID. The in-memory store is used when empty",
			Category:    "Firestore",
			Sources:     cli.EnvVars("FIXCACHE_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("FIXCACHE_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

// NewRepository connects to Firestore if a project is configured and falls back to the in-memory
// store otherwise. The in-memory store loses the cache on restart.
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.FixCacheRepository, error) {
	if !x.Enabled() {
		logging.From(ctx).Warn("firestore is not configured, using in-memory store")
		return memory.New(), nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID)
}

// RequireRepository is NewRepository without the in-memory fallback.
func (x *Firestore) RequireRepository(ctx context.Context) (interfaces.FixCacheRepository, error) {
	if !x.Enabled() {
		return nil, goerr.Wrap(types.ErrInvalidConfig, "firestore project ID is required")
	}
	return firestore.New(ctx, x.projectID, x.databaseID)
}
