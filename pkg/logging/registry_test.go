package logging_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragdata/gobytes/pkg/logging"
)

func TestNamedReturnsSameLogger(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)

	first := logging.Named("installer", logging.WithOutput("discard"))
	second := logging.Named("installer")

	// Same name must yield the same instance
	assert.Same(t, first, second)
}

func TestNamedIgnoresLaterOptions(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)

	first := logging.Named("worker", logging.WithOutput("discard"), logging.WithLevel("debug"))
	second := logging.Named("worker", logging.WithLevel("error"))

	assert.Same(t, first, second)
	// The level from the first call sticks
	assert.True(t, first.Debug().Enabled())
}

func TestLookup(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)

	_, ok := logging.Lookup("missing")
	assert.False(t, ok)

	created := logging.Named("present", logging.WithOutput("discard"))
	found, ok := logging.Lookup("present")
	require.True(t, ok)
	assert.Same(t, created, found)
}

func TestNames(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)

	logging.Named("zulu", logging.WithOutput("discard"))
	logging.Named("alpha", logging.WithOutput("discard"))
	logging.Named("mike", logging.WithOutput("discard"))

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, logging.Names())
}

func TestNamedConcurrent(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)

	const goroutines = 32

	var wg sync.WaitGroup
	loggers := make([]any, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = logging.Named("shared", logging.WithOutput("discard"))
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, loggers[0], loggers[i])
	}
}

func TestNamedAddsLoggerField(t *testing.T) {
	logging.Reset()
	t.Cleanup(logging.Reset)

	logFile := filepath.Join(t.TempDir(), "audit.log")
	named := logging.Named("audit",
		logging.WithOutput(logFile),
		logging.WithFormat("json"),
		logging.WithDefaultFields(map[string]any{"app": "gobytes"}),
	)

	named.Info().Msg("recorded")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"logger":"audit"`)
	assert.Contains(t, string(data), `"app":"gobytes"`)
	assert.Contains(t, string(data), "recorded")
}
