package firestore_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aavshr/fixcache/pkg/repository/firestore"
	"github.com/aavshr/fixcache/pkg/repository/testhelper"
	"github.com/m-mizutani/gt"
)

func TestFirestoreFixCacheRepository(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	if projectID == "" || databaseID == "" {
		t.Skip("Firestore credentials not configured (TEST_FIRESTORE_PROJECT_ID, TEST_FIRESTORE_DATABASE_ID)")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d_", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}

func TestToCacheDocID(t *testing.T) {
	id, err := firestore.ToCacheDocID("pkg/server/handler.go")
	gt.NoError(t, err)
	gt.S(t, id).NotContains("/")

	other, err := firestore.ToCacheDocID("pkg/server/handler_test.go")
	gt.NoError(t, err)
	gt.V(t, other).NotEqual(id)

	// Same path always maps to the same document
	again, err := firestore.ToCacheDocID("pkg/server/handler.go")
	gt.NoError(t, err)
	gt.V(t, again).Equal(id)

	_, err = firestore.ToCacheDocID("")
	gt.Error(t, err)
}
