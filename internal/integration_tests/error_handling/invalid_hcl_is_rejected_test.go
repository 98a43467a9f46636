package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sweepgridgo/internal/testutil"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL string with a clear syntax error (a missing closing brace).
	files := map[string]string{
		"main.hcl": `
			grid "g" {
				cells = [[1, 2]
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.Error(t, result.Err, "startup should have failed for invalid HCL")
	require.Contains(t, result.Err.Error(), "startup panicked")
	require.Contains(t, result.Err.Error(), "failed to parse")
}
