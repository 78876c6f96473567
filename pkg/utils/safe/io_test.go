package safe_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aavshr/fixcache/pkg/utils/safe"
	"github.com/m-mizutani/gt"
)

type errorCloser struct {
	err    error
	closed bool
}

func (x *errorCloser) Close() error {
	x.closed = true
	return x.err
}

func TestClose(t *testing.T) {
	t.Run("valid reader", func(t *testing.T) {
		safe.Close(io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("nil closer", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("closer returning error", func(t *testing.T) {
		c := &errorCloser{err: io.ErrUnexpectedEOF}
		safe.Close(c)
		gt.True(t, c.closed)
	})

	t.Run("closer returning EOF", func(t *testing.T) {
		c := &errorCloser{err: io.EOF}
		safe.Close(c)
		gt.True(t, c.closed)
	})
}

func TestRemoveAll(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		tmpDir := gt.R1(os.MkdirTemp("", "fixcache-test-*")).NoError(t)
		gt.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file.txt"), []byte("test"), 0600))

		safe.RemoveAll(tmpDir)

		_, err := os.Stat(tmpDir)
		gt.True(t, os.IsNotExist(err))
	})

	t.Run("missing directory", func(t *testing.T) {
		safe.RemoveAll(filepath.Join(t.TempDir(), "missing"))
	})
}
