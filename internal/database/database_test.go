// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/soldier0x00/portfolio-backend/internal/config"
	"github.com/soldier0x00/portfolio-backend/internal/models"
)

// setupTestDB creates an in-memory database with the full schema.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   2,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

// insertPageViewAt writes a page view with an explicit timestamp, for
// window and bucket tests.
func insertPageViewAt(t *testing.T, db *DB, page string, ts time.Time) {
	t.Helper()

	_, err := db.conn.ExecContext(context.Background(), `
		INSERT INTO page_views (id, page, timestamp) VALUES (?, ?, ?)
	`, uuid.New().String(), page, ts)
	if err != nil {
		t.Fatalf("Failed to insert page view: %v", err)
	}
}

// insertContactAt writes a contact message with an explicit timestamp.
func insertContactAt(t *testing.T, db *DB, subject string, ts time.Time) {
	t.Helper()

	_, err := db.conn.ExecContext(context.Background(), `
		INSERT INTO contact_messages (id, name, email, subject, message, timestamp, is_read)
		VALUES (?, 'Test', 'test@example.com', ?, 'hello', ?, FALSE)
	`, uuid.New().String(), subject, ts)
	if err != nil {
		t.Fatalf("Failed to insert contact message: %v", err)
	}
}

func TestCreateAndListContactMessages(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	create := &models.ContactMessageCreate{
		Name:    "Jane Analyst",
		Email:   "jane@example.com",
		Subject: models.SubjectCollaboration,
		Message: "Let's work together.",
	}

	msg, err := db.CreateContactMessage(ctx, create, "203.0.113.7")
	if err != nil {
		t.Fatalf("CreateContactMessage() error = %v", err)
	}
	if msg.ID == "" {
		t.Error("expected generated id")
	}
	if msg.IsRead {
		t.Error("new message must be unread")
	}
	if msg.Timestamp.IsZero() {
		t.Error("expected server-assigned timestamp")
	}

	messages, err := db.ListContactMessages(ctx, 10, 0, false)
	if err != nil {
		t.Fatalf("ListContactMessages() error = %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	got := messages[0]
	if got.ID != msg.ID || got.Name != create.Name || got.Email != create.Email {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Subject != models.SubjectCollaboration {
		t.Errorf("expected subject %q, got %q", models.SubjectCollaboration, got.Subject)
	}
	if got.IPAddress != "203.0.113.7" {
		t.Errorf("expected ip address persisted, got %q", got.IPAddress)
	}
}

func TestListContactMessagesOrderAndPagination(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	insertContactAt(t, db, "general", now.Add(-3*time.Hour))
	insertContactAt(t, db, "general", now.Add(-1*time.Hour))
	insertContactAt(t, db, "general", now.Add(-2*time.Hour))

	messages, err := db.ListContactMessages(ctx, 10, 0, false)
	if err != nil {
		t.Fatalf("ListContactMessages() error = %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].Timestamp.After(messages[i-1].Timestamp) {
			t.Error("messages not sorted newest-first")
		}
	}

	page, err := db.ListContactMessages(ctx, 2, 1, false)
	if err != nil {
		t.Fatalf("ListContactMessages() error = %v", err)
	}
	if len(page) != 2 {
		t.Errorf("expected 2 messages with limit=2 skip=1, got %d", len(page))
	}
}

func TestMarkContactMessageRead(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	msg, err := db.CreateContactMessage(ctx, &models.ContactMessageCreate{
		Name:    "Reader",
		Email:   "reader@example.com",
		Subject: models.SubjectGeneral,
		Message: "hi",
	}, "")
	if err != nil {
		t.Fatalf("CreateContactMessage() error = %v", err)
	}

	if err := db.MarkContactMessageRead(ctx, msg.ID); err != nil {
		t.Fatalf("MarkContactMessageRead() error = %v", err)
	}

	// Idempotent on an already-read message
	if err := db.MarkContactMessageRead(ctx, msg.ID); err != nil {
		t.Fatalf("second MarkContactMessageRead() error = %v", err)
	}

	unread, err := db.ListContactMessages(ctx, 10, 0, true)
	if err != nil {
		t.Fatalf("ListContactMessages() error = %v", err)
	}
	if len(unread) != 0 {
		t.Errorf("expected no unread messages, got %d", len(unread))
	}

	if err := db.MarkContactMessageRead(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestGetContactStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	insertContactAt(t, db, "general", now.Add(-time.Hour))
	insertContactAt(t, db, "general", now.Add(-2*time.Hour))
	insertContactAt(t, db, "collaboration", now.AddDate(0, 0, -10))

	stats, err := db.GetContactStats(ctx)
	if err != nil {
		t.Fatalf("GetContactStats() error = %v", err)
	}

	if stats.TotalMessages != 3 {
		t.Errorf("expected 3 total, got %d", stats.TotalMessages)
	}
	if stats.UnreadMessages != 3 {
		t.Errorf("expected 3 unread, got %d", stats.UnreadMessages)
	}
	if stats.RecentMessages != 2 {
		t.Errorf("expected 2 recent (7d), got %d", stats.RecentMessages)
	}
	if len(stats.SubjectBreakdown) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(stats.SubjectBreakdown))
	}
	if stats.SubjectBreakdown[0].Subject != "general" || stats.SubjectBreakdown[0].Count != 2 {
		t.Errorf("expected general first with count 2, got %+v", stats.SubjectBreakdown[0])
	}
}

func TestSubscribeNewsletterOutcomes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	email := "reader@example.com"

	outcome, err := db.SubscribeNewsletter(ctx, email)
	if err != nil {
		t.Fatalf("SubscribeNewsletter() error = %v", err)
	}
	if outcome != models.Subscribed {
		t.Errorf("first subscribe: expected Subscribed, got %v", outcome)
	}

	outcome, err = db.SubscribeNewsletter(ctx, email)
	if err != nil {
		t.Fatalf("second SubscribeNewsletter() error = %v", err)
	}
	if outcome != models.AlreadySubscribed {
		t.Errorf("repeat subscribe: expected AlreadySubscribed, got %v", outcome)
	}

	if err := db.UnsubscribeNewsletter(ctx, email); err != nil {
		t.Fatalf("UnsubscribeNewsletter() error = %v", err)
	}

	outcome, err = db.SubscribeNewsletter(ctx, email)
	if err != nil {
		t.Fatalf("resubscribe error = %v", err)
	}
	if outcome != models.Resubscribed {
		t.Errorf("resubscribe: expected Resubscribed, got %v", outcome)
	}

	// The whole dance must leave exactly one row
	subs, err := db.ListNewsletterSubscribers(ctx, 10, 0, false)
	if err != nil {
		t.Fatalf("ListNewsletterSubscribers() error = %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 subscription row, got %d", len(subs))
	}
	if !subs[0].IsActive {
		t.Error("expected reactivated subscription to be active")
	}
	if subs[0].Source != "website" {
		t.Errorf("expected source website, got %q", subs[0].Source)
	}
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	db := setupTestDB(t)

	err := db.UnsubscribeNewsletter(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewsletterSubscribersActiveFilter(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := db.SubscribeNewsletter(ctx, email); err != nil {
			t.Fatalf("SubscribeNewsletter(%s) error = %v", email, err)
		}
	}
	if err := db.UnsubscribeNewsletter(ctx, "b@example.com"); err != nil {
		t.Fatalf("UnsubscribeNewsletter() error = %v", err)
	}

	active, err := db.ListNewsletterSubscribers(ctx, 10, 0, true)
	if err != nil {
		t.Fatalf("ListNewsletterSubscribers(active) error = %v", err)
	}
	if len(active) != 2 {
		t.Errorf("expected 2 active subscribers, got %d", len(active))
	}

	all, err := db.ListNewsletterSubscribers(ctx, 10, 0, false)
	if err != nil {
		t.Fatalf("ListNewsletterSubscribers(all) error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 total subscribers, got %d", len(all))
	}
}

func TestGetNewsletterStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Empty table: the growth divisor floors at 1, no division error
	stats, err := db.GetNewsletterStats(ctx)
	if err != nil {
		t.Fatalf("GetNewsletterStats() error = %v", err)
	}
	if stats.GrowthRate != 0 {
		t.Errorf("expected 0 growth on empty table, got %v", stats.GrowthRate)
	}

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := db.SubscribeNewsletter(ctx, email); err != nil {
			t.Fatalf("SubscribeNewsletter() error = %v", err)
		}
	}

	stats, err = db.GetNewsletterStats(ctx)
	if err != nil {
		t.Fatalf("GetNewsletterStats() error = %v", err)
	}
	if stats.TotalSubscribers != 2 || stats.ActiveSubscribers != 2 {
		t.Errorf("expected 2/2 subscribers, got %d/%d",
			stats.TotalSubscribers, stats.ActiveSubscribers)
	}
	if stats.RecentSubscriptions != 2 {
		t.Errorf("expected 2 recent subscriptions, got %d", stats.RecentSubscriptions)
	}
	// 2 recent / 2 active = 100%
	if stats.GrowthRate != 100 {
		t.Errorf("expected growth rate 100, got %v", stats.GrowthRate)
	}
}

func TestInsertAndListPageViews(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	view, err := db.InsertPageView(ctx, &models.PageViewCreate{
		Page:      "/projects",
		IPAddress: "203.0.113.9",
		UserAgent: "test-agent",
		Referrer:  "https://example.com",
	})
	if err != nil {
		t.Fatalf("InsertPageView() error = %v", err)
	}
	if view.ID == "" || view.Timestamp.IsZero() {
		t.Error("expected generated id and timestamp")
	}

	result, err := db.ListPageViews(ctx, "", 7, 100)
	if err != nil {
		t.Fatalf("ListPageViews() error = %v", err)
	}
	if result.TotalCount != 1 || len(result.PageViews) != 1 {
		t.Fatalf("expected 1 view, got total=%d len=%d", result.TotalCount, len(result.PageViews))
	}
	if result.PeriodDays != 7 {
		t.Errorf("expected period_days 7, got %d", result.PeriodDays)
	}
	if result.PageViews[0].Referrer != "https://example.com" {
		t.Errorf("referrer not persisted: %+v", result.PageViews[0])
	}
}

func TestListPageViewsFilterAndTotalCount(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		insertPageViewAt(t, db, "/blog", now.Add(-time.Duration(i)*time.Minute))
	}
	insertPageViewAt(t, db, "/about", now.Add(-time.Minute))
	insertPageViewAt(t, db, "/blog", now.AddDate(0, 0, -10)) // outside 7d window

	result, err := db.ListPageViews(ctx, "/blog", 7, 3)
	if err != nil {
		t.Fatalf("ListPageViews() error = %v", err)
	}

	// total_count is the full match count, not the truncated page
	if result.TotalCount != 5 {
		t.Errorf("expected total_count 5, got %d", result.TotalCount)
	}
	if len(result.PageViews) != 3 {
		t.Errorf("expected 3 rows with limit=3, got %d", len(result.PageViews))
	}
	for _, v := range result.PageViews {
		if v.Page != "/blog" {
			t.Errorf("page filter leaked row: %+v", v)
		}
	}
}

func TestGetAnalyticsSummary(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	// Three pages with distinct view counts inside the window
	for i := 0; i < 3; i++ {
		insertPageViewAt(t, db, "/home", now.Add(-time.Duration(i+1)*time.Hour))
	}
	insertPageViewAt(t, db, "/blog", now.Add(-2*time.Hour))
	insertPageViewAt(t, db, "/home", now.AddDate(0, 0, -40)) // outside 30d
	insertContactAt(t, db, "general", now.Add(-30*time.Hour))

	if _, err := db.SubscribeNewsletter(ctx, "reader@example.com"); err != nil {
		t.Fatalf("SubscribeNewsletter() error = %v", err)
	}

	summary, err := db.GetAnalyticsSummary(ctx, 30)
	if err != nil {
		t.Fatalf("GetAnalyticsSummary() error = %v", err)
	}

	if summary.TotalViews != 4 {
		t.Errorf("expected 4 views in window, got %d", summary.TotalViews)
	}
	if summary.TotalContacts != 1 {
		t.Errorf("expected 1 contact in window, got %d", summary.TotalContacts)
	}
	if summary.TotalSubscribers != 1 {
		t.Errorf("expected 1 subscriber in window, got %d", summary.TotalSubscribers)
	}

	if len(summary.PopularPages) != 2 {
		t.Fatalf("expected 2 popular pages, got %d", len(summary.PopularPages))
	}
	if summary.PopularPages[0].Page != "/home" || summary.PopularPages[0].Views != 3 {
		t.Errorf("expected /home first with 3 views, got %+v", summary.PopularPages[0])
	}

	if len(summary.RecentActivity) != 7 {
		t.Fatalf("expected 7 activity buckets, got %d", len(summary.RecentActivity))
	}
	// Oldest-first: each date label must not decrease
	for i := 1; i < len(summary.RecentActivity); i++ {
		if summary.RecentActivity[i].Date < summary.RecentActivity[i-1].Date {
			t.Errorf("activity buckets not oldest-first: %v", summary.RecentActivity)
		}
	}
	// The newest bucket holds today's three /home views plus /blog
	last := summary.RecentActivity[6]
	if last.Views != 4 {
		t.Errorf("expected 4 views in newest bucket, got %d", last.Views)
	}
	// The contact 30h ago falls in the second-newest bucket
	if summary.RecentActivity[5].Contacts != 1 {
		t.Errorf("expected 1 contact in second-newest bucket, got %d",
			summary.RecentActivity[5].Contacts)
	}

	var bucketViews int64
	for _, b := range summary.RecentActivity {
		bucketViews += b.Views
	}
	if bucketViews != 4 {
		t.Errorf("expected bucket views to sum to 4, got %d", bucketViews)
	}
}

func TestGetAnalyticsSummaryEmptyWindow(t *testing.T) {
	db := setupTestDB(t)

	summary, err := db.GetAnalyticsSummary(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetAnalyticsSummary(0) error = %v", err)
	}
	if summary.TotalViews != 0 || summary.TotalContacts != 0 || summary.TotalSubscribers != 0 {
		t.Errorf("expected zero totals for 0-day window, got %+v", summary)
	}
	if len(summary.PopularPages) != 0 {
		t.Errorf("expected no popular pages, got %v", summary.PopularPages)
	}
	if len(summary.RecentActivity) != 7 {
		t.Errorf("activity series is always 7 buckets, got %d", len(summary.RecentActivity))
	}
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	insertPageViewAt(t, db, "/home", midnight.Add(time.Minute)) // today
	insertPageViewAt(t, db, "/home", now.AddDate(0, 0, -3))     // this week
	insertPageViewAt(t, db, "/home", now.AddDate(0, 0, -20))    // this month
	insertPageViewAt(t, db, "/home", now.AddDate(0, 0, -60))    // total only
	insertContactAt(t, db, "general", now.AddDate(0, 0, -2))

	if _, err := db.SubscribeNewsletter(ctx, "reader@example.com"); err != nil {
		t.Fatalf("SubscribeNewsletter() error = %v", err)
	}

	stats, err := db.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if stats.Today.Views != 1 {
		t.Errorf("expected 1 view today, got %d", stats.Today.Views)
	}
	if stats.Week.Views != 2 {
		t.Errorf("expected 2 views this week, got %d", stats.Week.Views)
	}
	if stats.Month.Views != 3 {
		t.Errorf("expected 3 views this month, got %d", stats.Month.Views)
	}
	if stats.Total.Views != 4 {
		t.Errorf("expected 4 total views, got %d", stats.Total.Views)
	}
	if stats.Week.Contacts != 1 || stats.Total.Contacts != 1 {
		t.Errorf("unexpected contact counts: week=%d total=%d",
			stats.Week.Contacts, stats.Total.Contacts)
	}
	if stats.Total.Subscribers != 1 {
		t.Errorf("expected 1 active subscriber, got %d", stats.Total.Subscribers)
	}
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
