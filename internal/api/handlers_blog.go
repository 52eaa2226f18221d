// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soldier0x00/portfolio-backend/internal/blog"
)

// BlogPosts handles GET /api/blog/posts.
func (h *Handler) BlogPosts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	limit := h.clampLimit(getIntParam(r, "limit", 10))
	skip := clampSkip(getIntParam(r, "skip", 0))

	respondJSON(w, http.StatusOK, h.blog.List(category, limit, skip))
}

// BlogPost handles GET /api/blog/posts/{id}. Fetching a post counts as
// a view.
func (h *Handler) BlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.blog.Get(id)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "Blog post not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch blog post", err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

// BlogCategories handles GET /api/blog/categories.
func (h *Handler) BlogCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.blog.Categories())
}

// BlogTags handles GET /api/blog/tags.
func (h *Handler) BlogTags(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.blog.Tags())
}

// BlogRecent handles GET /api/blog/recent.
func (h *Handler) BlogRecent(w http.ResponseWriter, r *http.Request) {
	limit := h.clampLimit(getIntParam(r, "limit", 5))
	respondJSON(w, http.StatusOK, h.blog.Recent(limit))
}

// BlogSearch handles GET /api/blog/search.
func (h *Handler) BlogSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Query is required", nil)
		return
	}
	limit := h.clampLimit(getIntParam(r, "limit", 10))

	respondJSON(w, http.StatusOK, h.blog.Search(query, limit))
}
