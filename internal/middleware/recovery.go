// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/goccy/go-json"

	"github.com/soldier0x00/portfolio-backend/internal/logging"
)

// Recoverer converts handler panics into a JSON 500 instead of killing
// the connection. The stack goes to the log, never to the client.
func Recoverer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Ctx(r.Context()).Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Handler panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				//nolint:errcheck // response already committed
				json.NewEncoder(w).Encode(map[string]interface{}{
					"message": "Internal server error",
					"success": false,
				})
			}
		}()

		next(w, r)
	}
}
