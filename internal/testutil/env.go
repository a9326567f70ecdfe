// Package testutil provides utilities for testing the installer in
// isolation.
package testutil

import (
	"testing"
)

// ScrubEnv clears every environment variable the installer reads, so a
// test observes defaults regardless of what the developer's shell or CI
// has exported. Cleanup is handled by t.Setenv.
func ScrubEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"LED_MATRIX_VERSION",
		"LED_MATRIX_INSTALL_DIR",
		"GITHUB_TOKEN",
		"LED_MATRIX_VERBOSE",
		"LED_MATRIX_QUIET",
	} {
		t.Setenv(key, "")
	}
}
