package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/aavshr/fixcache/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestSentryFlags(t *testing.T) {
	var sentryConfig config.Sentry
	flags := sentryConfig.Flags()

	gt.A(t, flags).Length(3)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
	gt.True(t, flagNames["sentry-release"])
}

func TestSentryNotConfigured(t *testing.T) {
	var sentryConfig config.Sentry
	gt.NoError(t, sentryConfig.Configure(context.Background()))

	// no-op without DSN
	sentryConfig.Flush(time.Millisecond)
}
