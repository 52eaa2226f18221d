// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// Package api provides the HTTP surface: Chi routing, request decoding
// and validation, and translation of service errors into the JSON error
// envelope.
package api

import (
	"time"

	"github.com/soldier0x00/portfolio-backend/internal/blog"
	"github.com/soldier0x00/portfolio-backend/internal/config"
	"github.com/soldier0x00/portfolio-backend/internal/database"
)

// apiVersion is reported by the service banner and health endpoints.
const apiVersion = "1.0.0"

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	db        *database.DB
	blog      *blog.Catalog
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates the handler set over the given stores.
func NewHandler(db *database.DB, catalog *blog.Catalog, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		blog:      catalog,
		cfg:       cfg,
		startTime: time.Now(),
	}
}
