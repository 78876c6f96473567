package firestore

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionRepo  = "repo"
	collectionCache = "cache"
	collectionState = "state"
	docCacheState   = "cache"
)

type fixCacheRepository struct {
	client         *firestore.Client
	repoCollection string
}

// cacheState holds the version of the cache subcollection of one repository.
type cacheState struct {
	Version   int64
	UpdatedAt time.Time
}

// ToCacheDocID converts a file path to a Firestore-safe document ID. Paths contain "/" which
// Firestore treats as a path separator, so the path is encoded with unpadded URL-safe base64.
func ToCacheDocID(path string) (string, error) {
	if path == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "path is empty")
	}
	return base64.RawURLEncoding.EncodeToString([]byte(path)), nil
}

func (r *fixCacheRepository) repoDoc(repoID types.GitHubRepoID) *firestore.DocumentRef {
	return r.client.Collection(r.repoCollection).Doc(repoID.String())
}

func (r *fixCacheRepository) cacheColl(repoID types.GitHubRepoID) *firestore.CollectionRef {
	return r.repoDoc(repoID).Collection(collectionCache)
}

func (r *fixCacheRepository) stateDoc(repoID types.GitHubRepoID) *firestore.DocumentRef {
	return r.repoDoc(repoID).Collection(collectionState).Doc(docCacheState)
}

// Repository operations

func (r *fixCacheRepository) GetRepository(ctx context.Context, repoID types.GitHubRepoID) (*model.Repository, error) {
	snap, err := r.repoDoc(repoID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("repoID", repoID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("repoID", repoID),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository",
			goerr.V("repoID", repoID),
		)
	}

	return &repo, nil
}

func (r *fixCacheRepository) PutRepositories(ctx context.Context, repos []*model.Repository) error {
	if err := repository.CheckBatch(len(repos)); err != nil {
		return err
	}
	if len(repos) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, repo := range repos {
		batch.Set(r.repoDoc(repo.ID), repo)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return goerr.Wrap(err, "failed to put repositories",
			goerr.V("count", len(repos)),
		)
	}

	return nil
}

// Cache operations

func (r *fixCacheRepository) GetCache(ctx context.Context, repoID types.GitHubRepoID, limit int) (*model.CacheSet, error) {
	set := &model.CacheSet{RepoID: repoID}

	// Version is read before the entries. A writer that commits in between makes the version stale,
	// which the next CommitCache detects.
	snap, err := r.stateDoc(repoID).Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return nil, goerr.Wrap(err, "failed to get cache state",
			goerr.V("repoID", repoID),
		)
	}
	if err == nil {
		var state cacheState
		if err := snap.DataTo(&state); err != nil {
			return nil, goerr.Wrap(err, "failed to decode cache state",
				goerr.V("repoID", repoID),
			)
		}
		set.Version = state.Version
	}

	query := r.cacheColl(repoID).OrderBy("Seq", firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate cache entries",
				goerr.V("repoID", repoID),
			)
		}

		var entry model.CacheEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, goerr.Wrap(err, "failed to decode cache entry",
				goerr.V("repoID", repoID),
				goerr.V("docID", doc.Ref.ID),
			)
		}
		set.Entries = append(set.Entries, &entry)
	}

	return set, nil
}

func (r *fixCacheRepository) CommitCache(ctx context.Context, repoID types.GitHubRepoID, version int64, entries []*model.CacheEntry) error {
	newDocs := make(map[string]*model.CacheEntry, len(entries))
	for _, entry := range entries {
		docID, err := ToCacheDocID(entry.Path)
		if err != nil {
			return goerr.Wrap(err, "invalid cache entry", goerr.V("repoID", repoID))
		}
		stored := *entry
		stored.RepoID = repoID
		newDocs[docID] = &stored
	}

	stateRef := r.stateDoc(repoID)
	cacheRef := r.cacheColl(repoID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current int64
		snap, err := tx.Get(stateRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get cache state")
		}
		if err == nil {
			var state cacheState
			if err := snap.DataTo(&state); err != nil {
				return goerr.Wrap(err, "failed to decode cache state")
			}
			current = state.Version
		}

		if current != version {
			return goerr.Wrap(repository.ErrConflict, "cache was updated by another writer",
				goerr.V("expected", version),
				goerr.V("actual", current),
			)
		}

		existing, err := tx.Documents(cacheRef).GetAll()
		if err != nil {
			return goerr.Wrap(err, "failed to list cache entries")
		}

		// All reads must happen before the first write in a Firestore transaction
		for _, doc := range existing {
			if _, keep := newDocs[doc.Ref.ID]; keep {
				continue
			}
			if err := tx.Delete(doc.Ref); err != nil {
				return goerr.Wrap(err, "failed to delete cache entry", goerr.V("docID", doc.Ref.ID))
			}
		}

		for docID, entry := range newDocs {
			if err := tx.Set(cacheRef.Doc(docID), entry); err != nil {
				return goerr.Wrap(err, "failed to set cache entry", goerr.V("path", entry.Path))
			}
		}

		return tx.Set(stateRef, &cacheState{
			Version:   current + 1,
			UpdatedAt: time.Now().UTC(),
		})
	})

	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return goerr.Wrap(err, "conflict on cache commit", goerr.V("repoID", repoID))
		}
		return goerr.Wrap(err, "failed to commit cache",
			goerr.V("repoID", repoID),
			goerr.V("count", len(entries)),
		)
	}

	return nil
}
