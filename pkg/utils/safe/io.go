package safe

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/aavshr/fixcache/pkg/utils/logging"
)

// Close closes the resource and logs the error, if any. io.EOF is not reported.
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.Default().Warn("Fail to close resource", slog.Any("error", err))
	}
}

// RemoveAll removes a temporary directory and logs the error, if any.
func RemoveAll(path string) {
	if err := os.RemoveAll(path); err != nil {
		logging.Default().Warn("Fail to remove directory", slog.String("path", path), slog.Any("error", err))
	}
}
