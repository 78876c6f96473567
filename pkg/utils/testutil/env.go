package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable key, skipping the test when it is
// unset. Integration tests against Firestore and GitHub use it for their credentials.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}
