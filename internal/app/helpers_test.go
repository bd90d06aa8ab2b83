package app

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/specialistvlad/calibrate/internal/config"
)

// stubLoader returns a fixed model or error instead of reading files.
type stubLoader struct {
	model *config.Model
	err   error
	calls []string
}

func (l *stubLoader) Load(_ context.Context, path string) (*config.Model, error) {
	l.calls = append(l.calls, path)
	return l.model, l.err
}

// setupAppTest creates a new App writing its result and logs to buffers.
func setupAppTest(t *testing.T, appConfig *Config, loader config.Loader, opts ...Option) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	if loader == nil {
		loader = &stubLoader{}
	}
	testApp := NewApp(out, logs, appConfig, loader, opts...)

	t.Cleanup(func() {
		if os.Getenv("CALIBRATE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
