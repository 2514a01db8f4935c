package ctxutil

import (
	"context"
	"testing"
)

func TestSetGetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background(), "abc123")
	if got := GetTraceID(ctx); got != "abc123" {
		t.Errorf("expected abc123, got %q", got)
	}
}

func TestGetTraceIDAbsent(t *testing.T) {
	if got := GetTraceID(context.Background()); got != "" {
		t.Errorf("expected empty trace ID, got %q", got)
	}
}

func TestEnsureTraceID(t *testing.T) {
	ctx, traceID := EnsureTraceID(context.Background())
	if traceID == "" {
		t.Fatal("expected a generated trace ID")
	}
	if len(traceID) != traceIDSize {
		t.Errorf("expected trace ID of length %d, got %d", traceIDSize, len(traceID))
	}

	ctx2, traceID2 := EnsureTraceID(ctx)
	if traceID2 != traceID {
		t.Errorf("expected existing trace ID preserved, got %q", traceID2)
	}
	if ctx2 != ctx {
		t.Error("expected context unchanged when trace ID exists")
	}
}
