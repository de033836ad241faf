package slog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/calcgo/providers/observability"
)

func newTestObserver() (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return New(logger), &buf
}

func TestObserver_SpanLifecycle(t *testing.T) {
	observer, buf := newTestObserver()

	ctx, span := observer.StartSpan(context.Background(), "calc.evaluate",
		observability.String(observability.AttrOperationName, "suma"),
	)

	if observability.SpanFromContext(ctx) != span {
		t.Error("StartSpan should attach the span to the returned context")
	}

	span.AddEvent(observability.EventApplyStart)
	span.SetAttributes(observability.Float64(observability.AttrOperationResult, 15))
	span.End()

	output := buf.String()
	for _, want := range []string{"span.start", "calc.apply.start", "span.end", "calc.evaluate"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestObserver_SpanError(t *testing.T) {
	observer, buf := newTestObserver()

	_, span := observer.StartSpan(context.Background(), "calc.evaluate")
	span.RecordError(errors.New("division by zero"))
	span.End()

	output := buf.String()
	if !strings.Contains(output, "division by zero") {
		t.Errorf("log output missing recorded error:\n%s", output)
	}
	if !strings.Contains(output, "level=ERROR") {
		t.Errorf("span with recorded error should end at error level:\n%s", output)
	}
}

func TestObserver_Logging(t *testing.T) {
	observer, buf := newTestObserver()
	ctx := context.Background()

	observer.Debug(ctx, "debug message")
	observer.Info(ctx, "info message", observability.Int(observability.AttrCatalogSize, 5))
	observer.Warn(ctx, "warn message")
	observer.Error(ctx, "error message")

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message", "calc.catalog.size=5"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseLogLevel(tc.input); got != tc.expected {
				t.Errorf("ParseLogLevel(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}
