// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package database

import (
	"context"
	"fmt"
)

// createTableStatements defines every persisted collection.
//
// blog_posts, experiences, and projects are provisioned but idle at
// runtime: the blog catalog is served from memory pending real Medium RSS
// sync, and experiences/projects are reserved for admin tooling.
var createTableStatements = []string{
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id         VARCHAR PRIMARY KEY,
		name       VARCHAR NOT NULL,
		email      VARCHAR NOT NULL,
		subject    VARCHAR NOT NULL,
		message    VARCHAR NOT NULL,
		timestamp  TIMESTAMP NOT NULL,
		is_read    BOOLEAN NOT NULL DEFAULT FALSE,
		ip_address VARCHAR
	)`,
	// The UNIQUE constraint on email is the storage-layer guard that keeps
	// concurrent first-time subscribes from creating duplicates.
	`CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
		id            VARCHAR PRIMARY KEY,
		email         VARCHAR NOT NULL UNIQUE,
		subscribed_at TIMESTAMP NOT NULL,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		source        VARCHAR NOT NULL DEFAULT 'website'
	)`,
	`CREATE TABLE IF NOT EXISTS page_views (
		id         VARCHAR PRIMARY KEY,
		page       VARCHAR NOT NULL,
		timestamp  TIMESTAMP NOT NULL,
		ip_address VARCHAR,
		user_agent VARCHAR,
		referrer   VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id         VARCHAR PRIMARY KEY,
		title      VARCHAR NOT NULL,
		excerpt    VARCHAR NOT NULL,
		content    VARCHAR,
		medium_url VARCHAR,
		date       TIMESTAMP NOT NULL,
		read_time  VARCHAR,
		tags       VARCHAR[],
		category   VARCHAR,
		status     VARCHAR NOT NULL DEFAULT 'published',
		views      BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS experiences (
		id           VARCHAR PRIMARY KEY,
		title        VARCHAR NOT NULL,
		company      VARCHAR NOT NULL,
		location     VARCHAR,
		period       VARCHAR,
		type         VARCHAR,
		highlights   VARCHAR[],
		technologies VARCHAR[],
		achievements VARCHAR[],
		is_current   BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id           VARCHAR PRIMARY KEY,
		title        VARCHAR NOT NULL,
		category     VARCHAR,
		status       VARCHAR,
		description  VARCHAR,
		technologies VARCHAR[],
		features     VARCHAR[],
		goals        VARCHAR[],
		icon         VARCHAR,
		color        VARCHAR,
		github_url   VARCHAR,
		demo_url     VARCHAR,
		is_featured  BOOLEAN NOT NULL DEFAULT TRUE
	)`,
}

// createIndexStatements covers the fields used for sort and filter.
var createIndexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_contact_timestamp ON contact_messages (timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_email ON contact_messages (email)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_is_read ON contact_messages (is_read)`,
	`CREATE INDEX IF NOT EXISTS idx_newsletter_subscribed_at ON newsletter_subscriptions (subscribed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_page_views_timestamp ON page_views (timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_page_views_page ON page_views (page)`,
	`CREATE INDEX IF NOT EXISTS idx_page_views_ip ON page_views (ip_address)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_date ON blog_posts (date)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_category ON blog_posts (category)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_status ON blog_posts (status)`,
}

// createTables creates every collection table.
func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range createTableStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// createIndexes creates the sort/filter indexes.
func (db *DB) createIndexes(ctx context.Context) error {
	for _, stmt := range createIndexStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
