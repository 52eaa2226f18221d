// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// responses.go - Shared API Response Shapes
//
// Every mutation endpoint answers with one of these envelopes; errors use
// MessageResponse with Success=false so clients can branch on a single
// shape.
package models

import (
	"time"
)

// MessageResponse is the generic success/error envelope.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ContactResponse is the contact submission confirmation.
type ContactResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ValidationDetail describes one field that failed request validation.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 envelope with per-field detail.
type ValidationErrorResponse struct {
	Message string             `json:"message"`
	Detail  []ValidationDetail `json:"detail"`
	Success bool               `json:"success"`
}

// HealthStatus is the /health payload.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Uptime    float64           `json:"uptime_seconds"`
}

// ServiceBanner is the / (root) payload.
type ServiceBanner struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}
