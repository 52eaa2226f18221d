// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// blog.go - Blog Catalog Models
//
// Blog posts are non-authoritative mock content pending real Medium RSS
// sync. The catalog is defined at process start; only the view counter
// mutates, and it lives outside the post snapshot.
package models

import (
	"time"
)

// BlogPost is one entry of the static blog catalog.
// Status is informational only ("published", "coming-soon").
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content,omitempty"`
	MediumURL string    `json:"medium_url,omitempty"`
	Date      time.Time `json:"date"`
	ReadTime  string    `json:"read_time"`
	Tags      []string  `json:"tags"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Views     int64     `json:"views"`
}

// BlogCategories is the category listing with per-category post counts.
type BlogCategories struct {
	Categories     []string       `json:"categories"`
	CategoryCounts map[string]int `json:"category_counts"`
	TotalPosts     int            `json:"total_posts"`
}

// BlogTags is the tag listing, frequency-sorted descending.
type BlogTags struct {
	Tags      []string       `json:"tags"`
	TagCounts map[string]int `json:"tag_counts"`
	TotalTags int            `json:"total_tags"`
}

// BlogSearchResult is the search response with the echoed query.
// TotalMatches counts all matches before the limit is applied.
type BlogSearchResult struct {
	Results      []BlogPost `json:"results"`
	TotalMatches int        `json:"total_matches"`
	Query        string     `json:"query"`
}
