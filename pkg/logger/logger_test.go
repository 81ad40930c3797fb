package logger

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
)

// mockLogLevel is a valid zapcore.Level value for testing.
const mockLogLevel int8 = 0 // zapcore.InfoLevel

func TestGetReturnsLoggerInstance(t *testing.T) {
	logger := Get(mockLogLevel)
	if logger == nil {
		t.Fatal("Get should return a non-nil logger")
	}
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(mockLogLevel)
	if logger1 != logger2 {
		t.Error("Get should return the same logger instance on subsequent calls")
	}
}

func TestWithLoggerAddsLoggerToContext(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	newCtx := WithLogger(ctx, logger)

	got := newCtx.Value(loggerContextKey{})
	if got == nil {
		t.Fatal("WithLogger should add logger to context")
	}
	if got != logger {
		t.Error("WithLogger should store the provided logger in context")
	}
}

func TestWithLoggerReturnsSameContextIfLoggerAlreadySet(t *testing.T) {
	logger := Get(mockLogLevel)
	ctx := WithLogger(context.Background(), logger)
	again := WithLogger(ctx, logger)
	if ctx != again {
		t.Error("WithLogger should return the original context for the same logger instance")
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	logger := Get(mockLogLevel)
	got := FromContext(context.Background())
	if got != logger {
		t.Error("FromContext should fall back to the global logger")
	}
}

func TestFromContextPrefersContextLogger(t *testing.T) {
	discard := logr.Discard()
	ctx := WithLogger(context.Background(), &discard)
	got := FromContext(ctx)
	if got != &discard {
		t.Error("FromContext should return the logger stored in context")
	}
}

func TestGetNoopLogger(t *testing.T) {
	noop := GetNoopLogger()
	if noop == nil {
		t.Fatal("GetNoopLogger should never return nil")
	}
	// Logging through the noop logger must not panic.
	noop.Info("ignored")
}

func TestWithValuesReturnsAugmentedLogger(t *testing.T) {
	base := GetNoopLogger()
	augmented := WithValues(base, "component", "test")
	if augmented == nil {
		t.Fatal("WithValues should return a logger")
	}
	if augmented == base {
		t.Error("WithValues should return a new logger instance")
	}
}

func TestSyncDoesNotPanic(t *testing.T) {
	Get(mockLogLevel)
	Sync()
}
