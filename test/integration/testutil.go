//go:build integration

package integration

import (
	"os"
	"testing"
)

// skipIfShort skips the test if running in short mode or if SKIP_INTEGRATION is set
func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION") != "" {
		t.Skip("Skipping integration test (SKIP_INTEGRATION set)")
	}
}
