package requestctx

import (
	"context"
	"testing"
)

func TestRequestIDFromContextRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "qb-42")
	if got := RequestIDFromContext(ctx); got != "qb-42" {
		t.Fatalf("RequestIDFromContext = %q, want %q", got, "qb-42")
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestIDFromContextNil(t *testing.T) {
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
}

func TestWithRequestIDNilContext(t *testing.T) {
	ctx := WithRequestID(nil, "qb-7")
	if got := RequestIDFromContext(ctx); got != "qb-7" {
		t.Fatalf("RequestIDFromContext = %q, want %q", got, "qb-7")
	}
}
