// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// pageviews.go - Page View Tracking
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soldier0x00/portfolio-backend/internal/models"
)

// InsertPageView records one page view with a server-assigned id and
// timestamp. The stored record is returned.
func (db *DB) InsertPageView(ctx context.Context, create *models.PageViewCreate) (*models.PageView, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	view := &models.PageView{
		ID:        uuid.New().String(),
		Page:      create.Page,
		Timestamp: time.Now().UTC(),
		IPAddress: create.IPAddress,
		UserAgent: create.UserAgent,
		Referrer:  create.Referrer,
	}

	query := `
		INSERT INTO page_views (id, page, timestamp, ip_address, user_agent, referrer)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := db.conn.ExecContext(ctx, query,
		view.ID, view.Page, view.Timestamp, view.IPAddress, view.UserAgent, view.Referrer,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert page view: %w", err)
	}

	return view, nil
}

// ListPageViews returns the newest views within the trailing window,
// optionally filtered to one page. total_count is the full count of
// matching rows, not the truncated result length.
func (db *DB) ListPageViews(ctx context.Context, page string, days, limit int) (*models.PageViewsResult, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	where := "timestamp >= ?"
	args := []interface{}{cutoff}
	if page != "" {
		where += " AND page = ?"
		args = append(args, page)
	}

	total, err := db.countWhere(ctx, "page_views", where, args...)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, page, timestamp, COALESCE(ip_address, ''), COALESCE(user_agent, ''), COALESCE(referrer, '')
		FROM page_views
		WHERE ` + where + `
		ORDER BY timestamp DESC
		LIMIT ?
	`
	rows, err := db.conn.QueryContext(ctx, query, append(args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query page views: %w", err)
	}
	defer rows.Close()

	views := make([]models.PageView, 0, limit)
	for rows.Next() {
		var view models.PageView
		if err := rows.Scan(&view.ID, &view.Page, &view.Timestamp,
			&view.IPAddress, &view.UserAgent, &view.Referrer); err != nil {
			return nil, fmt.Errorf("failed to scan page view: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate page views: %w", err)
	}

	return &models.PageViewsResult{
		PageViews:  views,
		TotalCount: total,
		PeriodDays: days,
	}, nil
}
