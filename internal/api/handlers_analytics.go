// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package api

import (
	"net/http"

	"github.com/soldier0x00/portfolio-backend/internal/logging"
	"github.com/soldier0x00/portfolio-backend/internal/metrics"
	"github.com/soldier0x00/portfolio-backend/internal/models"
	"github.com/soldier0x00/portfolio-backend/internal/validation"
)

// AnalyticsTrack handles POST /api/analytics/track.
// Tracking is fire-and-forget from the client's perspective: a storage
// failure is logged and answered with 200 and success=false so a broken
// analytics pipeline never breaks page loads.
func (h *Handler) AnalyticsTrack(w http.ResponseWriter, r *http.Request) {
	create := models.PageViewCreate{
		Page:      r.URL.Query().Get("page"),
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
		Referrer:  r.URL.Query().Get("referrer"),
	}
	if create.Referrer == "" {
		create.Referrer = r.Referer()
	}

	if verr := validation.ValidateStruct(&create); verr != nil {
		respondValidationError(w, verr)
		return
	}

	if _, err := h.db.InsertPageView(r.Context(), &create); err != nil {
		metrics.PageViewTrackingFailures.Inc()
		logging.Ctx(r.Context()).Error().Err(err).
			Str("page", sanitizeLogValue(create.Page)).
			Msg("Failed to track page view")
		respondJSON(w, http.StatusOK, &models.MessageResponse{
			Message: "Page view tracking failed",
			Success: false,
		})
		return
	}

	metrics.PageViewsTracked.Inc()
	respondJSON(w, http.StatusOK, &models.MessageResponse{
		Message: "Page view tracked",
		Success: true,
	})
}

// AnalyticsSummary handles GET /api/analytics/summary.
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	days := getIntParam(r, "days", 30)
	if days < 0 {
		days = 0
	}

	summary, err := h.db.GetAnalyticsSummary(r.Context(), days)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch analytics", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// AnalyticsPageViews handles GET /api/analytics/page-views.
func (h *Handler) AnalyticsPageViews(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	days := getIntParam(r, "days", 7)
	if days < 0 {
		days = 0
	}
	limit := h.clampLimit(getIntParam(r, "limit", 100))

	result, err := h.db.ListPageViews(r.Context(), page, days, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch page views", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// AnalyticsDashboard handles GET /api/analytics/dashboard.
func (h *Handler) AnalyticsDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.GetDashboardStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch dashboard data", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
