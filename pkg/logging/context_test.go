package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ragdata/gobytes/pkg/logging"
)

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithComponent(ctx, "messenger")
	ctx = logging.WithOperation(ctx, "render")

	logger := logging.FromContext(ctx)
	logger.Info().Msg("test message")

	testLogger.AssertContains(t, "messenger")
	testLogger.AssertContains(t, "render")
	testLogger.AssertContains(t, "test message")
}

func TestFromContextFallsBack(t *testing.T) {
	// nil context returns the default logger
	if logging.FromContext(nil) != logging.Default() { //nolint:staticcheck // nil context is the case under test
		t.Error("Expected default logger for nil context")
	}

	// context without a logger returns the default logger
	if logging.FromContext(context.Background()) != logging.Default() {
		t.Error("Expected default logger for empty context")
	}
}

func TestCtxAlias(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	if logging.Ctx(ctx) != testLogger.Logger {
		t.Error("Ctx should return the logger stored in the context")
	}
}

func TestWithFields(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	ctx = logging.WithFields(ctx, map[string]any{
		"count":   3,
		"enabled": true,
		"ratio":   0.5,
	})

	logging.Ctx(ctx).Info().Msg("typed fields")

	testLogger.AssertContains(t, `"count":3`)
	testLogger.AssertContains(t, `"enabled":true`)
	testLogger.AssertContains(t, `"ratio":0.5`)
}

func TestWithError(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	ctx = logging.WithError(ctx, errors.New("wrapped failure"))
	logging.Ctx(ctx).Error().Msg("with error context")

	testLogger.AssertContains(t, "wrapped failure")

	// nil error leaves the context untouched
	before := logging.Ctx(ctx)
	after := logging.Ctx(logging.WithError(ctx, nil))
	if before != after {
		t.Error("WithError(nil) should not replace the logger")
	}
}
