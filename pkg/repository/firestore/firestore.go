package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Option func(*fixCacheRepository)

// WithCollectionPrefix prefixes the top level collection name. Several deployments (or test runs)
// can share one database this way.
func WithCollectionPrefix(prefix string) Option {
	return func(r *fixCacheRepository) {
		r.repoCollection = prefix + collectionRepo
	}
}

// New connects to Firestore. An empty databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.FixCacheRepository, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo := &fixCacheRepository{
		client:         client,
		repoCollection: collectionRepo,
	}
	for _, opt := range options {
		opt(repo)
	}
	return repo, nil
}
