// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// analytics.go - Page View and Analytics Models
//
// Page views are immutable append-only records. Everything else here is
// derived on demand and never stored.
package models

import (
	"time"
)

// PageView is a single tracked page view.
type PageView struct {
	ID        string    `json:"id"`
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
}

// PageViewCreate is the inbound tracking payload. Page is the only
// required field; client metadata comes from request headers.
type PageViewCreate struct {
	Page      string `validate:"required,min=1"`
	IPAddress string
	UserAgent string
	Referrer  string
}

// PageCount is one entry of the popular-pages ranking.
type PageCount struct {
	Page  string `json:"page"`
	Views int64  `json:"views"`
}

// ActivityBucket is one 24-hour bucket of the recent-activity series.
// Date is the bucket start day formatted YYYY-MM-DD.
type ActivityBucket struct {
	Date     string `json:"date"`
	Views    int64  `json:"views"`
	Contacts int64  `json:"contacts"`
}

// AnalyticsSummary is the windowed rollup served by /analytics/summary.
// Computed on demand from independent aggregate queries.
type AnalyticsSummary struct {
	TotalViews       int64            `json:"total_views"`
	TotalContacts    int64            `json:"total_contacts"`
	TotalSubscribers int64            `json:"total_subscribers"`
	PopularPages     []PageCount      `json:"popular_pages"`
	RecentActivity   []ActivityBucket `json:"recent_activity"`
}

// PeriodStats is one time-window slice of the dashboard.
type PeriodStats struct {
	Views    int64 `json:"views"`
	Contacts int64 `json:"contacts"`
}

// TotalStats is the unbounded slice of the dashboard.
type TotalStats struct {
	Views       int64 `json:"views"`
	Contacts    int64 `json:"contacts"`
	Subscribers int64 `json:"subscribers"`
}

// DashboardStats is the nested rollup served by /analytics/dashboard.
// Today is since midnight UTC; week and month are trailing windows.
type DashboardStats struct {
	Today PeriodStats `json:"today"`
	Week  PeriodStats `json:"week"`
	Month PeriodStats `json:"month"`
	Total TotalStats  `json:"total"`
}

// PageViewsResult is the filtered page-view listing with its metadata.
// TotalCount is the true matching count over the same filter, independent
// of the returned page size.
type PageViewsResult struct {
	PageViews  []PageView `json:"page_views"`
	TotalCount int64      `json:"total_count"`
	PeriodDays int        `json:"period_days"`
}
