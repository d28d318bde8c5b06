package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fieldMap(entry observer.LoggedEntry) map[string]zap.Field {
	fields := map[string]zap.Field{}
	for _, f := range entry.Context {
		fields[f.Key] = f
	}
	return fields
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogError(ctx, "failed", errors.New("boom"), zap.String("foo", "bar"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "failed" || entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("unexpected entry: %+v", entries[0].Entry)
	}

	fields := fieldMap(entries[0])
	if f, ok := fields["foo"]; !ok || f.String != "bar" {
		t.Fatalf("expected foo field, got %+v", fields)
	}
	if f, ok := fields["error"]; !ok || f.Type != zapcore.ErrorType {
		t.Fatalf("expected error field, got %+v", fields)
	}
}

func TestLogErrorNilError(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogError(ctx, "no error", nil, zap.String("key", "value"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if _, ok := fieldMap(entries[0])["error"]; ok {
		t.Fatal("did not expect error field when err is nil")
	}
}

func TestLogInfoAndWarnWriteEntries(t *testing.T) {
	tests := []struct {
		name  string
		log   func(context.Context, string, ...zap.Field)
		level zapcore.Level
	}{
		{"info", LogInfo, zapcore.InfoLevel},
		{"warn", LogWarn, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, recorded := observer.New(zapcore.DebugLevel)
			ctx := WithLogger(context.Background(), zap.New(core))

			tt.log(ctx, tt.name+" message", zap.String("foo", "bar"))

			entries := recorded.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 log entry, got %d", len(entries))
			}
			entry := entries[0]
			if entry.Message != tt.name+" message" || entry.Level != tt.level {
				t.Fatalf("unexpected entry: %+v", entry.Entry)
			}
			if len(entry.Context) != 1 || entry.Context[0].Key != "foo" || entry.Context[0].String != "bar" {
				t.Fatalf("unexpected context fields: %+v", entry.Context)
			}
		})
	}
}

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	var nilCtx context.Context //nolint:revive // testing nil context handling
	if LoggerFromContext(nilCtx) != Logger() {
		t.Fatal("expected global logger for nil context")
	}
	if LoggerFromContext(context.Background()) != Logger() {
		t.Fatal("expected global logger for context without logger")
	}

	ctx := context.WithValue(context.Background(), ctxLoggerKey{}, (*zap.Logger)(nil))
	if LoggerFromContext(ctx) != Logger() {
		t.Fatal("expected global logger when context holds a nil logger")
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	var nilCtx context.Context //nolint:revive // testing nil context handling
	ctx := WithLogger(nilCtx, zap.New(core))
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	LoggerFromContext(ctx).Info("test")
	if len(recorded.All()) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(recorded.All()))
	}
}
