// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package api

import (
	"net/http"
	"time"

	"github.com/soldier0x00/portfolio-backend/internal/models"
)

// Root handles GET /api/ with the service banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.ServiceBanner{
		Message: "Soldier0x00 Portfolio API",
		Status:  "operational",
		Version: apiVersion,
	})
}

// Health handles GET /api/health. The database check is a live ping;
// a failed ping degrades the status but still answers 200 so monitors
// can read the per-service detail.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := &models.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Services: map[string]string{
			"database": "connected",
			"api":      "operational",
		},
		Uptime: time.Since(h.startTime).Seconds(),
	}

	if err := h.db.Ping(r.Context()); err != nil {
		status.Status = "degraded"
		status.Services["database"] = "unreachable"
	}

	respondJSON(w, http.StatusOK, status)
}
