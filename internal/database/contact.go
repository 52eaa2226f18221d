// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// contact.go - Contact Message Operations
//
// Messages are append-only; the read flag is the only mutable field.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soldier0x00/portfolio-backend/internal/models"
)

// CreateContactMessage persists a new contact message, assigning its id
// and server timestamp. The stored record is returned.
func (db *DB) CreateContactMessage(ctx context.Context, create *models.ContactMessageCreate, ipAddress string) (*models.ContactMessage, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	msg := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      create.Name,
		Email:     create.Email,
		Subject:   create.Subject,
		Message:   create.Message,
		Timestamp: time.Now().UTC(),
		IsRead:    false,
		IPAddress: ipAddress,
	}

	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, timestamp, is_read, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.conn.ExecContext(ctx, query,
		msg.ID, msg.Name, msg.Email, string(msg.Subject), msg.Message,
		msg.Timestamp, msg.IsRead, msg.IPAddress,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact message: %w", err)
	}

	return msg, nil
}

// ListContactMessages returns messages sorted by timestamp descending.
// Pagination is skip+limit; no cursor stability is guaranteed across
// concurrent inserts.
func (db *DB) ListContactMessages(ctx context.Context, limit, offset int, unreadOnly bool) ([]models.ContactMessage, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		SELECT id, name, email, subject, message, timestamp, is_read, COALESCE(ip_address, '')
		FROM contact_messages
	`
	if unreadOnly {
		query += " WHERE is_read = FALSE"
	}
	query += " ORDER BY timestamp DESC LIMIT ? OFFSET ?"

	rows, err := db.conn.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0, limit)
	for rows.Next() {
		var msg models.ContactMessage
		var subject string
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &subject, &msg.Message,
			&msg.Timestamp, &msg.IsRead, &msg.IPAddress); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		msg.Subject = models.ContactSubject(subject)
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}

	return messages, nil
}

// MarkContactMessageRead sets the read flag on one message.
// Idempotent; returns ErrNotFound when no record matches the id.
func (db *DB) MarkContactMessageRead(ctx context.Context, id string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE contact_messages SET is_read = TRUE WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark contact message read: %w", err)
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

// GetContactStats computes the contact dashboard numbers with four
// independent aggregate queries.
func (db *DB) GetContactStats(ctx context.Context) (*models.ContactStats, error) {
	total, err := db.countWhere(ctx, "contact_messages", "")
	if err != nil {
		return nil, err
	}

	unread, err := db.countWhere(ctx, "contact_messages", "is_read = FALSE")
	if err != nil {
		return nil, err
	}

	sevenDaysAgo := time.Now().UTC().AddDate(0, 0, -7)
	recent, err := db.countWhere(ctx, "contact_messages", "timestamp >= ?", sevenDaysAgo)
	if err != nil {
		return nil, err
	}

	breakdown, err := db.subjectBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	return &models.ContactStats{
		TotalMessages:    total,
		UnreadMessages:   unread,
		RecentMessages:   recent,
		SubjectBreakdown: breakdown,
	}, nil
}

// subjectBreakdown groups messages by subject, sorted by count descending.
func (db *DB) subjectBreakdown(ctx context.Context) ([]models.SubjectCount, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT subject, COUNT(*) AS count
		FROM contact_messages
		GROUP BY subject
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subject breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make([]models.SubjectCount, 0, len(models.ValidContactSubjects))
	for rows.Next() {
		var sc models.SubjectCount
		if err := rows.Scan(&sc.Subject, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan subject breakdown: %w", err)
		}
		breakdown = append(breakdown, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subject breakdown: %w", err)
	}

	return breakdown, nil
}
