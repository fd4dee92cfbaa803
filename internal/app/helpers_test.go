package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// fixedClock advances by step on every call.
func fixedClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(step)
		return t
	}
}

// setupAppTest writes input to a temporary file and returns an App reading
// it, with the report buffer and the log buffer.
func setupAppTest(t *testing.T, input string, mutate func(*Config)) (*App, *Config, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "numbers.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte(input), 0600), "failed to set up test file")

	raw := Config{
		InputPath:  inputPath,
		OutputPath: filepath.Join(dir, "out", "ConvertionResults.txt"),
		LogLevel:   "debug",
	}
	if mutate != nil {
		mutate(&raw)
	}
	cfg, err := NewConfig(raw)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &SafeBuffer{}
	testApp := NewApp(out, logs, cfg, WithClock(fixedClock(250*time.Millisecond)))

	t.Cleanup(func() {
		if os.Getenv("NUMCONV_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, cfg, out, logs
}
