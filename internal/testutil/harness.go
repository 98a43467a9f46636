// Package testutil provides the shared harness for integration tests: it
// materializes manifest files in a temp dir, boots the full application
// against them, and captures logs and report output.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sweepgridgo/internal/app"
	"github.com/vk/sweepgridgo/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Report    string
	LogOutput string
	Err       error
	App       *app.App
}

// Options tweaks the harness's app configuration.
type Options struct {
	WorkerCount  int
	ReportFormat string
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context and default options.
func RunIntegrationTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithOptions(context.Background(), t, files, Options{})
}

// RunIntegrationTestWithOptions boots the full application against the given
// manifest files, written into a fresh temp dir. Startup panics are
// recovered into HarnessResult.Err, so rejection tests can assert on them.
func RunIntegrationTestWithOptions(ctx context.Context, t *testing.T, files map[string]string, opts Options) *HarnessResult {
	t.Helper()

	// 1. Write all manifest and data files into a temporary root. Tests
	//    provide relative paths (e.g. "grids/sample.hcl"), which creates
	//    the subdirectory structure.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	if opts.WorkerCount == 0 {
		opts.WorkerCount = 4
	}
	if opts.ReportFormat == "" {
		opts.ReportFormat = "text"
	}

	appConfig := &app.Config{
		ManifestPath: tmpDir,
		LogLevel:     "debug",
		LogFormat:    "text",
		WorkerCount:  opts.WorkerCount,
		ReportFormat: opts.ReportFormat,
	}

	logBuffer := &SafeBuffer{}
	reportBuffer := &bytes.Buffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("SGGO_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.NewApp(reportBuffer, logBuffer, appConfig, hcl.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("SGGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Report:    reportBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
