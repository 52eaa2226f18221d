// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/soldier0x00/portfolio-backend/internal/logging"
	"github.com/soldier0x00/portfolio-backend/internal/models"
	"github.com/soldier0x00/portfolio-backend/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent
// log injection. Newlines and other controls become escaped hex so an
// attacker-supplied value cannot forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends the flat error envelope used by every endpoint.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		logging.Error().Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.MessageResponse{
		Message: message,
		Success: false,
	})
}

// respondValidationError sends a 422 carrying per-field details.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	respondJSON(w, http.StatusUnprocessableEntity, &models.ValidationErrorResponse{
		Message: "Validation failed",
		Detail:  verr.Details(),
		Success: false,
	})
}

// decodeJSON decodes a request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// getBoolParam extracts a boolean query parameter with a default value
func getBoolParam(r *http.Request, key string, defaultValue bool) bool {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// clampLimit bounds a caller-supplied page size to [1, max].
func (h *Handler) clampLimit(limit int) int {
	if limit < 1 {
		return h.cfg.API.DefaultPageSize
	}
	if limit > h.cfg.API.MaxPageSize {
		return h.cfg.API.MaxPageSize
	}
	return limit
}

// clampSkip rejects negative offsets.
func clampSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}

// clientIP returns the request's remote address without the port. The
// RealIP middleware has already folded X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx > 0 && !strings.HasSuffix(addr, "]") {
		if _, err := strconv.Atoi(addr[idx+1:]); err == nil {
			addr = addr[:idx]
		}
	}
	return strings.Trim(addr, "[]")
}
