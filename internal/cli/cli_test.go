package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/calibrate/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name:           "No flags leaves logging unset",
			args:           []string{},
			expectedConfig: &app.Config{},
		},
		{
			name: "Happy Path with all flags",
			args: []string{"--log-level=debug", "--log-format", "json", "--config", "/etc/calibrate.hcl"},
			expectedConfig: &app.Config{
				ConfigPath: "/etc/calibrate.hcl",
				LogLevel:   "debug",
				LogFormat:  "json",
			},
		},
		{
			name:           "Shorthand config flag",
			args:           []string{"-c", "conf.d"},
			expectedConfig: &app.Config{ConfigPath: "conf.d"},
		},
		{
			name:           "Flag values are case insensitive",
			args:           []string{"--log-level=WARN", "--log-format=Text"},
			expectedConfig: &app.Config{LogLevel: "warn", LogFormat: "text"},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "--log-level")
			},
		},
		{
			name:      "Unknown flag",
			args:      []string{"--workers=4"},
			expectErr: "unknown flag: --workers",
		},
		{
			name:      "Positional arguments are rejected",
			args:      []string{"input.txt"},
			expectErr: `unknown command "input.txt"`,
		},
		{
			name:      "Invalid log level",
			args:      []string{"--log-level=verbose"},
			expectErr: "invalid log-level",
		},
		{
			name:      "Invalid log format",
			args:      []string{"--log-format=xml"},
			expectErr: "invalid log-format",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			output := &bytes.Buffer{}
			config, shouldExit, err := Parse(tc.args, output)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, output.String())
			}
		})
	}
}
