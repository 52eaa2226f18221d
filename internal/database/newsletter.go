// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// newsletter.go - Newsletter Subscription Operations
//
// Subscribe is race-safe without service-level locking: a reactivating
// UPDATE runs first, then an INSERT ... ON CONFLICT DO NOTHING under the
// unique email constraint. Two concurrent first-time subscribes can both
// reach the INSERT, but the constraint lets exactly one row exist.
package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/soldier0x00/portfolio-backend/internal/models"
)

// SubscribeNewsletter subscribes an email, reactivating a soft-deleted
// record when one exists. The returned outcome distinguishes new,
// reactivated, and already-active subscriptions.
func (db *DB) SubscribeNewsletter(ctx context.Context, email string) (models.SubscribeOutcome, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := time.Now().UTC()

	res, err := db.conn.ExecContext(ctx, `
		UPDATE newsletter_subscriptions
		SET is_active = TRUE, subscribed_at = ?
		WHERE email = ? AND is_active = FALSE
	`, now, email)
	if err != nil {
		return 0, fmt.Errorf("failed to reactivate subscription: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	} else if affected > 0 {
		return models.Resubscribed, nil
	}

	res, err = db.conn.ExecContext(ctx, `
		INSERT INTO newsletter_subscriptions (id, email, subscribed_at, is_active, source)
		VALUES (?, ?, ?, TRUE, 'website')
		ON CONFLICT (email) DO NOTHING
	`, uuid.New().String(), email, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert subscription: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	} else if affected > 0 {
		return models.Subscribed, nil
	}

	return models.AlreadySubscribed, nil
}

// UnsubscribeNewsletter soft-deletes a subscription by clearing its
// active flag. Returns ErrNotFound when the email never subscribed.
func (db *DB) UnsubscribeNewsletter(ctx context.Context, email string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE newsletter_subscriptions SET is_active = FALSE WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListNewsletterSubscribers returns subscriptions sorted by subscribed_at
// descending, optionally filtered to active records.
func (db *DB) ListNewsletterSubscribers(ctx context.Context, limit, offset int, activeOnly bool) ([]models.NewsletterSubscription, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		SELECT id, email, subscribed_at, is_active, source
		FROM newsletter_subscriptions
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY subscribed_at DESC LIMIT ? OFFSET ?"

	rows, err := db.conn.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}
	defer rows.Close()

	subs := make([]models.NewsletterSubscription, 0, limit)
	for rows.Next() {
		var sub models.NewsletterSubscription
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.SubscribedAt, &sub.IsActive, &sub.Source); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}

	return subs, nil
}

// GetNewsletterStats computes subscriber totals and the 30-day growth
// rate. The growth divisor floors at one active subscriber, so an empty
// list yields 0 rather than a division error.
func (db *DB) GetNewsletterStats(ctx context.Context) (*models.NewsletterStats, error) {
	total, err := db.countWhere(ctx, "newsletter_subscriptions", "")
	if err != nil {
		return nil, err
	}

	active, err := db.countWhere(ctx, "newsletter_subscriptions", "is_active = TRUE")
	if err != nil {
		return nil, err
	}

	thirtyDaysAgo := time.Now().UTC().AddDate(0, 0, -30)
	recent, err := db.countWhere(ctx, "newsletter_subscriptions",
		"subscribed_at >= ? AND is_active = TRUE", thirtyDaysAgo)
	if err != nil {
		return nil, err
	}

	divisor := active
	if divisor < 1 {
		divisor = 1
	}
	growth := math.Round(float64(recent)/float64(divisor)*100*100) / 100

	return &models.NewsletterStats{
		TotalSubscribers:    total,
		ActiveSubscribers:   active,
		RecentSubscriptions: recent,
		GrowthRate:          growth,
	}, nil
}
