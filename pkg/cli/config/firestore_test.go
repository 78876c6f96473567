package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aavshr/fixcache/pkg/cli/config"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestFirestoreNotConfigured(t *testing.T) {
	var fs config.Firestore
	ctx := context.Background()
	gt.False(t, fs.Enabled())

	repo := gt.R1(fs.NewRepository(ctx)).NoError(t)
	set := gt.R1(repo.GetCache(ctx, 1, 10)).NoError(t)
	gt.A(t, set.Entries).Length(0)

	_, err := fs.RequireRepository(ctx)
	gt.True(t, errors.Is(err, types.ErrInvalidConfig))
}
