// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package api

import (
	"errors"
	"net/http"

	"github.com/soldier0x00/portfolio-backend/internal/database"
	"github.com/soldier0x00/portfolio-backend/internal/logging"
	"github.com/soldier0x00/portfolio-backend/internal/metrics"
	"github.com/soldier0x00/portfolio-backend/internal/models"
	"github.com/soldier0x00/portfolio-backend/internal/validation"
)

// subscribeMessages maps each subscribe outcome to its response text.
// Every outcome is a 200; the caller's email ends up active either way.
var subscribeMessages = map[models.SubscribeOutcome]string{
	models.Subscribed:        "Successfully subscribed! You'll receive updates about new cybersecurity articles and insights.",
	models.Resubscribed:      "Welcome back! You've been resubscribed to our newsletter.",
	models.AlreadySubscribed: "You're already subscribed to our newsletter!",
}

var subscribeOutcomeLabels = map[models.SubscribeOutcome]string{
	models.Subscribed:        "subscribed",
	models.Resubscribed:      "resubscribed",
	models.AlreadySubscribed: "already_subscribed",
}

// NewsletterSubscribe handles POST /api/newsletter/subscribe.
func (h *Handler) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var create models.NewsletterSubscribe
	if err := decodeJSON(r, &create); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if verr := validation.ValidateStruct(&create); verr != nil {
		respondValidationError(w, verr)
		return
	}

	outcome, err := h.db.SubscribeNewsletter(r.Context(), create.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to subscribe. Please try again.", err)
		return
	}

	metrics.NewsletterSubscriptions.WithLabelValues(subscribeOutcomeLabels[outcome]).Inc()
	if outcome == models.Subscribed {
		logging.Ctx(r.Context()).Info().Str("email", sanitizeLogValue(create.Email)).Msg("New newsletter subscription")
	}

	respondJSON(w, http.StatusOK, &models.MessageResponse{
		Message: subscribeMessages[outcome],
		Success: true,
	})
}

// NewsletterUnsubscribe handles POST /api/newsletter/unsubscribe.
// The email arrives as a query parameter so one-click unsubscribe links
// work without a body.
func (h *Handler) NewsletterUnsubscribe(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "Email is required", nil)
		return
	}

	if err := h.db.UnsubscribeNewsletter(r.Context(), email); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Email not found in our subscription list", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to unsubscribe. Please try again.", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("email", sanitizeLogValue(email)).Msg("Newsletter unsubscription")

	respondJSON(w, http.StatusOK, &models.MessageResponse{
		Message: "You've been successfully unsubscribed from our newsletter.",
		Success: true,
	})
}

// NewsletterSubscribers handles GET /api/newsletter/subscribers (admin
// endpoint). active_only defaults to true.
func (h *Handler) NewsletterSubscribers(w http.ResponseWriter, r *http.Request) {
	limit := h.clampLimit(getIntParam(r, "limit", 100))
	skip := clampSkip(getIntParam(r, "skip", 0))
	activeOnly := getBoolParam(r, "active_only", true)

	subs, err := h.db.ListNewsletterSubscribers(r.Context(), limit, skip, activeOnly)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch subscribers", err)
		return
	}

	respondJSON(w, http.StatusOK, subs)
}

// NewsletterStats handles GET /api/newsletter/stats.
func (h *Handler) NewsletterStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.GetNewsletterStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch statistics", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
