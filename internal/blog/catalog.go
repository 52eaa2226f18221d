// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// Package blog serves the blog catalog. Post metadata is a fixed
// in-memory list pending real Medium RSS sync; only the per-post view
// counters are stateful, held in a BadgerDB ViewCounter so reads stay
// lock-free on the catalog itself.
package blog

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/soldier0x00/portfolio-backend/internal/logging"
	"github.com/soldier0x00/portfolio-backend/internal/models"
)

// ErrPostNotFound indicates no catalog post matches the given id.
var ErrPostNotFound = errors.New("blog post not found")

// Catalog provides read access to the post list. The post slice is
// never mutated after construction, so concurrent handlers share it
// without locking.
type Catalog struct {
	posts    []models.BlogPost
	counters *ViewCounter
}

// NewCatalog builds the catalog over the given counter store.
func NewCatalog(counters *ViewCounter) *Catalog {
	return &Catalog{
		posts:    seedPosts(),
		counters: counters,
	}
}

// List returns posts with optional case-insensitive category filtering
// and skip/limit pagination, preserving catalog order.
func (c *Catalog) List(category string, limit, skip int) []models.BlogPost {
	posts := c.posts
	if category != "" {
		filtered := make([]models.BlogPost, 0, len(posts))
		for _, post := range posts {
			if strings.EqualFold(post.Category, category) {
				filtered = append(filtered, post)
			}
		}
		posts = filtered
	}

	if skip >= len(posts) {
		return []models.BlogPost{}
	}
	posts = posts[skip:]
	if limit < len(posts) {
		posts = posts[:limit]
	}

	return c.withViews(posts)
}

// Get returns one post by id, counting the read as a view.
func (c *Catalog) Get(id string) (*models.BlogPost, error) {
	for _, post := range c.posts {
		if post.ID != id {
			continue
		}
		views, err := c.counters.Increment(id)
		if err != nil {
			// Serve the post anyway; a lost count is not worth a 500.
			logging.Warn().Err(err).Str("post_id", id).Msg("Failed to increment view counter")
			views = post.Views
		}
		post.Views = views
		return &post, nil
	}
	return nil, ErrPostNotFound
}

// Categories returns the distinct categories sorted alphabetically with
// per-category post counts.
func (c *Catalog) Categories() *models.BlogCategories {
	counts := make(map[string]int)
	for _, post := range c.posts {
		counts[post.Category]++
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return &models.BlogCategories{
		Categories:     categories,
		CategoryCounts: counts,
		TotalPosts:     len(c.posts),
	}
}

// Tags returns every tag sorted by frequency descending, with ties
// broken alphabetically so the order is deterministic.
func (c *Catalog) Tags() *models.BlogTags {
	counts := make(map[string]int)
	for _, post := range c.posts {
		for _, tag := range post.Tags {
			counts[tag]++
		}
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	return &models.BlogTags{
		Tags:      tags,
		TagCounts: counts,
		TotalTags: len(counts),
	}
}

// Recent returns the newest posts by publication date.
func (c *Catalog) Recent(limit int) []models.BlogPost {
	posts := make([]models.BlogPost, len(c.posts))
	copy(posts, c.posts)
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	if limit < len(posts) {
		posts = posts[:limit]
	}
	return c.withViews(posts)
}

// Search matches the query case-insensitively against title, excerpt,
// and tags. total_matches counts every hit even when the result list is
// truncated to limit.
func (c *Catalog) Search(query string, limit int) *models.BlogSearchResult {
	needle := strings.ToLower(query)

	matches := make([]models.BlogPost, 0, len(c.posts))
	for _, post := range c.posts {
		if matchesQuery(&post, needle) {
			matches = append(matches, post)
		}
	}

	results := matches
	if limit < len(results) {
		results = results[:limit]
	}

	return &models.BlogSearchResult{
		Results:      c.withViews(results),
		TotalMatches: len(matches),
		Query:        query,
	}
}

func matchesQuery(post *models.BlogPost, needle string) bool {
	if strings.Contains(strings.ToLower(post.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Excerpt), needle) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// withViews copies the posts and stamps each with its current counter
// value. Counter read failures leave the seeded zero in place.
func (c *Catalog) withViews(posts []models.BlogPost) []models.BlogPost {
	out := make([]models.BlogPost, len(posts))
	copy(out, posts)
	for i := range out {
		views, err := c.counters.Get(out[i].ID)
		if err != nil {
			logging.Warn().Err(err).Str("post_id", out[i].ID).Msg("Failed to read view counter")
			continue
		}
		out[i].Views = views
	}
	return out
}

// seedPosts returns the placeholder catalog. Dates are publication
// targets, and every post is coming-soon until the Medium sync lands.
func seedPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:       "1",
			Title:    "Advanced Threat Hunting: Beyond Traditional SIEM",
			Excerpt:  "Exploring next-generation threat hunting techniques using behavioral analytics and machine learning to detect sophisticated adversaries.",
			Date:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			ReadTime: "8 min read",
			Tags:     []string{"Threat Hunting", "SIEM", "Machine Learning", "APT"},
			Category: "Threat Hunting",
			Status:   "coming-soon",
		},
		{
			ID:       "2",
			Title:    "Building TAG: AI Guardian for Cybersecurity",
			Excerpt:  "Journey of creating The Autonomous Guardian (TAG) for cybersecurity operations, lessons learned, and practical implementation strategies.",
			Date:     time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			ReadTime: "12 min read",
			Tags:     []string{"AI", "Cybersecurity", "Automation", "Python"},
			Category: "AI & Security",
			Status:   "coming-soon",
		},
		{
			ID:       "3",
			Title:    "MITRE ATT&CK in Practice: Real-world Threat Modeling",
			Excerpt:  "Practical guide to implementing MITRE ATT&CK framework for threat modeling and detection engineering in enterprise environments.",
			Date:     time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
			ReadTime: "10 min read",
			Tags:     []string{"MITRE ATT&CK", "Threat Modeling", "Detection Engineering"},
			Category: "Frameworks",
			Status:   "coming-soon",
		},
		{
			ID:       "4",
			Title:    "Olympics 2024: Securing Global Events",
			Excerpt:  "Behind the scenes of cybersecurity operations for Paris 2024 Olympics - challenges, solutions, and lessons for critical infrastructure protection.",
			Date:     time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			ReadTime: "15 min read",
			Tags:     []string{"Critical Infrastructure", "Event Security", "Olympics", "SOC"},
			Category: "Case Studies",
			Status:   "coming-soon",
		},
		{
			ID:       "5",
			Title:    "Data Integration Meets Cybersecurity",
			Excerpt:  "How middleware technologies and data pipeline integration enhance cybersecurity operations and threat intelligence workflows.",
			Date:     time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			ReadTime: "11 min read",
			Tags:     []string{"Data Integration", "Middleware", "Threat Intelligence", "Pipelines"},
			Category: "Data Security",
			Status:   "coming-soon",
		},
		{
			ID:       "6",
			Title:    "Voice-Controlled Security: Building ITACHI",
			Excerpt:  "Developing ITACHI - an intelligent voice automation system for hands-free computing and advanced task automation.",
			Date:     time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
			ReadTime: "9 min read",
			Tags:     []string{"Voice Control", "Automation", "AI Assistant", "Innovation"},
			Category: "AI & Automation",
			Status:   "coming-soon",
		},
	}
}
