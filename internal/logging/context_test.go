// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package logging

import (
	"context"
	"testing"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if got := CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("empty context returned correlation id %q", got)
	}

	ctx = ContextWithCorrelationID(ctx, "abc123")
	if got := CorrelationIDFromContext(ctx); got != "abc123" {
		t.Errorf("CorrelationIDFromContext() = %q, want abc123", got)
	}
}

func TestContextWithNewCorrelationID(t *testing.T) {
	ctx := ContextWithNewCorrelationID(context.Background())

	id := CorrelationIDFromContext(ctx)
	if id == "" {
		t.Fatal("expected generated correlation id")
	}
	if len(id) != 8 {
		t.Errorf("correlation id %q length = %d, want 8", id, len(id))
	}

	// New calls generate distinct ids
	other := CorrelationIDFromContext(ContextWithNewCorrelationID(context.Background()))
	if other == id {
		t.Error("expected distinct correlation ids")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
}

func TestCtxReturnsUsableLogger(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")

	// Must not panic, with or without ids present
	Ctx(ctx).Debug().Msg("with ids")
	Ctx(context.Background()).Debug().Msg("without ids")
}
