// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/soldier0x00/portfolio-backend/internal/logging"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	var seenID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if seenID == "" {
		t.Error("expected generated request id in context")
	}
	if rec.Header().Get("X-Request-ID") != seenID {
		t.Error("response header must match context request id")
	}
}

func TestRequestIDHonorsUpstream(t *testing.T) {
	var seenID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "proxy-id")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if seenID != "proxy-id" {
		t.Errorf("expected upstream id, got %q", seenID)
	}
}

func TestRequestIDPopulatesLoggingContext(t *testing.T) {
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		if logging.RequestIDFromContext(r.Context()) == "" {
			t.Error("expected request id in logging context")
		}
		if logging.CorrelationIDFromContext(r.Context()) == "" {
			t.Error("expected correlation id in logging context")
		}
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRecovererConvertsPanicToJSON(t *testing.T) {
	handler := Recoverer(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("body missing error envelope: %s", rec.Body.String())
	}
}

func TestRecovererPassesThrough(t *testing.T) {
	handler := Recoverer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

func TestPrometheusMetricsCapturesStatus(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRequestLoggerPreservesResponse(t *testing.T) {
	handler := RequestLogger(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write([]byte("ok")); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}
