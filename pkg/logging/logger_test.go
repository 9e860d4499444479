package logging_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ragdata/gobytes/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	// Create a buffer to capture output
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	// Test logging at different levels
	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "warning message") {
		t.Errorf("Expected warning message in output, got: %s", output)
	}
}

func TestNewWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	logger := logging.New(buf)
	logger.Info().Str("key", "value").Msg("structured")

	output := buf.String()
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("Expected structured field in output, got: %s", output)
	}
	if !strings.Contains(output, `"message":"structured"`) {
		t.Errorf("Expected message in output, got: %s", output)
	}
}

func TestErrEvent(t *testing.T) {
	testLogger := logging.CaptureLoggingForTest(t)

	logging.Err(errors.New("boom")).Msg("operation failed")

	testLogger.AssertContains(t, "boom")
	testLogger.AssertContains(t, "operation failed")
}

func TestEventAt(t *testing.T) {
	testLogger := logging.CaptureLoggingForTest(t)

	logging.EventAt(zerolog.WarnLevel).Msg("routed by level")

	testLogger.AssertContains(t, `"level":"warn"`)
	testLogger.AssertContains(t, "routed by level")
}

func TestLevelChild(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	child := logging.Level(zerolog.ErrorLevel)
	child.Info().Msg("suppressed")
	child.Error().Msg("surfaced")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Errorf("Info should be suppressed at error level, got: %s", output)
	}
	if !strings.Contains(output, "surfaced") {
		t.Errorf("Expected error message in output, got: %s", output)
	}
}

func TestTestLoggerHelpers(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	testLogger.Info().Msg("first")
	testLogger.Info().Msg("second")

	if testLogger.Count() != 2 {
		t.Errorf("Expected 2 entries, got %d", testLogger.Count())
	}
	testLogger.AssertContains(t, "first")
	testLogger.AssertNotContains(t, "third")

	testLogger.Clear()
	if testLogger.Count() != 0 {
		t.Errorf("Expected 0 entries after Clear, got %d", testLogger.Count())
	}
}

func TestDisableLoggingForTest(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	logging.SetDefault(logger)

	t.Run("disabled", func(t *testing.T) {
		logging.DisableLoggingForTest(t)
		logging.Info().Msg("dropped")
	})

	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("Logging should have been disabled, got: %s", buf.String())
	}
}
