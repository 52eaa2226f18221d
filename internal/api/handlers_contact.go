// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soldier0x00/portfolio-backend/internal/database"
	"github.com/soldier0x00/portfolio-backend/internal/logging"
	"github.com/soldier0x00/portfolio-backend/internal/metrics"
	"github.com/soldier0x00/portfolio-backend/internal/models"
	"github.com/soldier0x00/portfolio-backend/internal/validation"
)

// ContactSubmit handles POST /api/contact/.
// A successful submission also records a synthetic page view for the
// analytics funnel; that write is best-effort and never fails the
// submission itself.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var create models.ContactMessageCreate
	if err := decodeJSON(r, &create); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if verr := validation.ValidateStruct(&create); verr != nil {
		respondValidationError(w, verr)
		return
	}

	ip := clientIP(r)
	msg, err := h.db.CreateContactMessage(r.Context(), &create, ip)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to send message. Please try again.", err)
		return
	}

	metrics.ContactMessagesReceived.WithLabelValues(string(create.Subject)).Inc()

	// Funnel tracking; a lost view must not turn a stored message into
	// an error response.
	_, trackErr := h.db.InsertPageView(r.Context(), &models.PageViewCreate{
		Page:      "contact_form_submission",
		IPAddress: ip,
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	})
	if trackErr != nil {
		metrics.PageViewTrackingFailures.Inc()
		logging.Ctx(r.Context()).Warn().Err(trackErr).Msg("Failed to track contact form submission")
	}

	logging.Ctx(r.Context()).Info().Str("email", sanitizeLogValue(create.Email)).Msg("New contact message")

	respondJSON(w, http.StatusOK, &models.ContactResponse{
		ID:      msg.ID,
		Message: "Your message has been sent successfully! I'll get back to you within 24-48 hours.",
		Success: true,
	})
}

// ContactMessages handles GET /api/contact/messages (admin endpoint).
func (h *Handler) ContactMessages(w http.ResponseWriter, r *http.Request) {
	limit := h.clampLimit(getIntParam(r, "limit", h.cfg.API.DefaultPageSize))
	skip := clampSkip(getIntParam(r, "skip", 0))
	unreadOnly := getBoolParam(r, "unread_only", false)

	messages, err := h.db.ListContactMessages(r.Context(), limit, skip, unreadOnly)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch messages", err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

// ContactMarkRead handles PATCH /api/contact/messages/{id}/read.
func (h *Handler) ContactMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.db.MarkContactMessageRead(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Message not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update message", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.MessageResponse{
		Message: "Message marked as read",
		Success: true,
	})
}

// ContactStats handles GET /api/contact/stats.
func (h *Handler) ContactStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.GetContactStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch statistics", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
