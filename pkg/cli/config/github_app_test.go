package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aavshr/fixcache/pkg/cli/config"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestGitHubAppPrivateKey(t *testing.T) {
	t.Run("inline key wins", func(t *testing.T) {
		app := config.NewGitHubAppForTest(1, "inline", "/not/read")
		key := gt.R1(app.LoadPrivateKeyForTest()).NoError(t)
		gt.V(t, key).Equal(types.GitHubAppPrivateKey("inline"))
	})

	t.Run("key file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.pem")
		gt.NoError(t, os.WriteFile(path, []byte("from-file"), 0600))

		app := config.NewGitHubAppForTest(1, "", path)
		key := gt.R1(app.LoadPrivateKeyForTest()).NoError(t)
		gt.V(t, key).Equal(types.GitHubAppPrivateKey("from-file"))
	})

	t.Run("no key", func(t *testing.T) {
		app := config.NewGitHubAppForTest(1, "", "")
		_, err := app.LoadPrivateKeyForTest()
		gt.True(t, errors.Is(err, types.ErrInvalidConfig))
	})

	t.Run("missing file", func(t *testing.T) {
		app := config.NewGitHubAppForTest(1, "", filepath.Join(t.TempDir(), "none.pem"))
		_, err := app.LoadPrivateKeyForTest()
		gt.Error(t, err)
	})
}
