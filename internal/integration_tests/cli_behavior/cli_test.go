package integration_tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/sweepgridgo/internal/app"
	"github.com/vk/sweepgridgo/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-manifest", "/test/manifest",
				"--log-level=debug",
				"--log-format=text",
				"--workers=50",
				"--report=json",
			},
			expectedConfig: &app.Config{
				ManifestPath: "/test/manifest",
				LogLevel:     "debug",
				LogFormat:    "text",
				WorkerCount:  50,
				ReportFormat: "json",
			},
		},
		{
			name: "Shorthand flag and defaults",
			args: []string{"-m", "/short/path"},
			expectedConfig: &app.Config{
				ManifestPath: "/short/path",
				LogLevel:     "info",
				LogFormat:    "json",
				WorkerCount:  4,
				ReportFormat: "text",
			},
		},
		{
			name: "Positional argument for path",
			args: []string{"/positional/path"},
			expectedConfig: &app.Config{
				ManifestPath: "/positional/path",
				LogLevel:     "info",
				LogFormat:    "json",
				WorkerCount:  4,
				ReportFormat: "text",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:       "No path triggers clean exit with usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--log-level=foo", "/path"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--log-format=yaml", "/path"},
			expectErr: true,
		},
		{
			name:      "Invalid report format returns an error",
			args:      []string{"--report=xml", "/path"},
			expectErr: true,
		},
		{
			name:      "Unknown flag returns an error",
			args:      []string{"--frobnicate", "/path"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}

			config, shouldExit, err := cli.Parse(tc.args, out)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}

func TestParse_WorkerCountBelowOneGetsDefault(t *testing.T) {
	t.Parallel()

	config, shouldExit, err := cli.Parse([]string{"--workers=0", "/path"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, 4, config.WorkerCount)
}
