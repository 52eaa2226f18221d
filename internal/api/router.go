// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soldier0x00/portfolio-backend/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it can be used with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// NewRouter wires every route behind the global middleware stack.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chiMiddleware(middleware.Recoverer)) // Panics become JSON 500s
	r.Use(cors.Handler(cors.Options{           // CORS must be global to handle OPTIONS preflight
		AllowedOrigins:   h.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chiMiddleware(middleware.RequestLogger))

	// Prometheus scrape endpoint lives outside the /api prefix and the
	// metrics middleware, so scrapes don't count themselves.
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", h.Root)
		r.Get("/health", h.Health)

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", h.ContactSubmit)
			r.Get("/messages", h.ContactMessages)
			r.Patch("/messages/{id}/read", h.ContactMarkRead)
			r.Get("/stats", h.ContactStats)
		})

		r.Route("/newsletter", func(r chi.Router) {
			r.Post("/subscribe", h.NewsletterSubscribe)
			r.Post("/unsubscribe", h.NewsletterUnsubscribe)
			r.Get("/subscribers", h.NewsletterSubscribers)
			r.Get("/stats", h.NewsletterStats)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Post("/track", h.AnalyticsTrack)
			r.Get("/summary", h.AnalyticsSummary)
			r.Get("/page-views", h.AnalyticsPageViews)
			r.Get("/dashboard", h.AnalyticsDashboard)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/posts", h.BlogPosts)
			r.Get("/posts/{id}", h.BlogPost)
			r.Get("/categories", h.BlogCategories)
			r.Get("/tags", h.BlogTags)
			r.Get("/recent", h.BlogRecent)
			r.Get("/search", h.BlogSearch)
		})
	})

	return r
}
