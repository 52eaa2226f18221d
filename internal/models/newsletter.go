// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// newsletter.go - Newsletter Subscription Models
//
// Subscriptions are soft-deleted: unsubscribe flips is_active, and a later
// subscribe reactivates the same record. The email is the business key and
// is unique at the storage layer.
package models

import (
	"time"
)

// NewsletterSubscription is a persisted newsletter subscription.
type NewsletterSubscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	IsActive     bool      `json:"is_active"`
	Source       string    `json:"source"`
}

// NewsletterSubscribe is the inbound subscribe payload.
type NewsletterSubscribe struct {
	Email string `json:"email" validate:"required,email"`
}

// SubscribeOutcome distinguishes the three subscribe results.
type SubscribeOutcome int

const (
	// Subscribed means a new subscription record was created.
	Subscribed SubscribeOutcome = iota

	// Resubscribed means an inactive record was reactivated.
	Resubscribed

	// AlreadySubscribed means an active record already existed.
	AlreadySubscribed
)

// NewsletterStats summarizes the newsletter_subscriptions collection.
// GrowthRate is recent 30-day active subscriptions over max(active, 1),
// as a percentage rounded to two decimals.
type NewsletterStats struct {
	TotalSubscribers    int64   `json:"total_subscribers"`
	ActiveSubscribers   int64   `json:"active_subscribers"`
	RecentSubscriptions int64   `json:"recent_subscriptions"`
	GrowthRate          float64 `json:"growth_rate"`
}
