// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// analytics.go - Traffic Aggregation Queries
//
// The activity timeline uses seven fixed 24-hour buckets ending at the
// query instant, not calendar days. Each bucket is labeled with the UTC
// date of its start and the series is returned oldest-first.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/soldier0x00/portfolio-backend/internal/models"
)

const activityBuckets = 7

// GetAnalyticsSummary aggregates the trailing window: totals, the ten
// most-viewed pages, and the seven-bucket activity timeline.
func (db *DB) GetAnalyticsSummary(ctx context.Context, days int) (*models.AnalyticsSummary, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	views, err := db.countWhere(ctx, "page_views", "timestamp >= ?", cutoff)
	if err != nil {
		return nil, err
	}

	contacts, err := db.countWhere(ctx, "contact_messages", "timestamp >= ?", cutoff)
	if err != nil {
		return nil, err
	}

	subscribers, err := db.countWhere(ctx, "newsletter_subscriptions",
		"subscribed_at >= ? AND is_active = TRUE", cutoff)
	if err != nil {
		return nil, err
	}

	popular, err := db.popularPages(ctx, cutoff, 10)
	if err != nil {
		return nil, err
	}

	activity, err := db.recentActivity(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsSummary{
		TotalViews:       views,
		TotalContacts:    contacts,
		TotalSubscribers: subscribers,
		PopularPages:     popular,
		RecentActivity:   activity,
	}, nil
}

// GetDashboardStats computes the four dashboard windows: today since
// midnight UTC, the trailing 7 and 30 days, and all-time totals.
func (db *DB) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	today, err := db.periodStats(ctx, midnight)
	if err != nil {
		return nil, err
	}

	week, err := db.periodStats(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	month, err := db.periodStats(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	totalViews, err := db.countWhere(ctx, "page_views", "")
	if err != nil {
		return nil, err
	}
	totalContacts, err := db.countWhere(ctx, "contact_messages", "")
	if err != nil {
		return nil, err
	}
	activeSubs, err := db.countWhere(ctx, "newsletter_subscriptions", "is_active = TRUE")
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		Today: *today,
		Week:  *week,
		Month: *month,
		Total: models.TotalStats{
			Views:       totalViews,
			Contacts:    totalContacts,
			Subscribers: activeSubs,
		},
	}, nil
}

// periodStats counts views and contacts since the given cutoff.
func (db *DB) periodStats(ctx context.Context, since time.Time) (*models.PeriodStats, error) {
	views, err := db.countWhere(ctx, "page_views", "timestamp >= ?", since)
	if err != nil {
		return nil, err
	}
	contacts, err := db.countWhere(ctx, "contact_messages", "timestamp >= ?", since)
	if err != nil {
		return nil, err
	}
	return &models.PeriodStats{Views: views, Contacts: contacts}, nil
}

// popularPages returns the most-viewed pages within the window, sorted
// by view count descending.
func (db *DB) popularPages(ctx context.Context, cutoff time.Time, limit int) ([]models.PageCount, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT page, COUNT(*) AS views
		FROM page_views
		WHERE timestamp >= ?
		GROUP BY page
		ORDER BY views DESC
		LIMIT ?
	`, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular pages: %w", err)
	}
	defer rows.Close()

	pages := make([]models.PageCount, 0, limit)
	for rows.Next() {
		var pc models.PageCount
		if err := rows.Scan(&pc.Page, &pc.Views); err != nil {
			return nil, fmt.Errorf("failed to scan popular page: %w", err)
		}
		pages = append(pages, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate popular pages: %w", err)
	}

	return pages, nil
}

// recentActivity builds the seven-bucket timeline. Bucket 0 is the most
// recent 24 hours; the result is reversed so callers render oldest-first.
func (db *DB) recentActivity(ctx context.Context) ([]models.ActivityBucket, error) {
	end := time.Now().UTC()
	start := end.Add(-activityBuckets * 24 * time.Hour)

	viewCounts, err := db.bucketCounts(ctx, "page_views", start, end)
	if err != nil {
		return nil, err
	}
	contactCounts, err := db.bucketCounts(ctx, "contact_messages", start, end)
	if err != nil {
		return nil, err
	}

	activity := make([]models.ActivityBucket, 0, activityBuckets)
	for i := activityBuckets - 1; i >= 0; i-- {
		bucketStart := end.Add(-time.Duration(i+1) * 24 * time.Hour)
		activity = append(activity, models.ActivityBucket{
			Date:     bucketStart.Format("2006-01-02"),
			Views:    viewCounts[i],
			Contacts: contactCounts[i],
		})
	}
	return activity, nil
}

// bucketCounts groups rows of one table into 24-hour buckets counted
// back from end. Index 0 is the newest bucket.
func (db *DB) bucketCounts(ctx context.Context, table string, start, end time.Time) ([activityBuckets]int64, error) {
	var counts [activityBuckets]int64

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT CAST(FLOOR((? - epoch(timestamp)) / 86400) AS INTEGER) AS bucket, COUNT(*)
		FROM %s
		WHERE timestamp > ? AND timestamp <= ?
		GROUP BY bucket
	`, table)

	rows, err := db.conn.QueryContext(ctx, query, end.Unix(), start, end)
	if err != nil {
		return counts, fmt.Errorf("failed to query %s activity: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bucket int
		var count int64
		if err := rows.Scan(&bucket, &count); err != nil {
			return counts, fmt.Errorf("failed to scan %s activity: %w", table, err)
		}
		if bucket >= 0 && bucket < activityBuckets {
			counts[bucket] = count
		}
	}
	if err := rows.Err(); err != nil {
		return counts, fmt.Errorf("failed to iterate %s activity: %w", table, err)
	}

	return counts, nil
}
