// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// Package models provides data structures for the portfolio backend.
//
// contact.go - Contact Form Models
//
// A contact message is created on form submit, mutated only by the
// read-flag toggle, and never deleted.
package models

import (
	"time"
)

// ContactSubject is the closed set of contact form subjects.
// Unknown subjects are rejected at validation; the form offers exactly
// these options.
type ContactSubject string

const (
	// SubjectCollaboration is for project collaboration inquiries.
	SubjectCollaboration ContactSubject = "collaboration"

	// SubjectConsultation is for consulting engagements.
	SubjectConsultation ContactSubject = "consultation"

	// SubjectThreatIntel is for threat intelligence topics.
	SubjectThreatIntel ContactSubject = "threat-intel"

	// SubjectAISecurity is for AI security topics.
	SubjectAISecurity ContactSubject = "ai-security"

	// SubjectGeneral is the catch-all subject.
	SubjectGeneral ContactSubject = "general"
)

// ValidContactSubjects contains all accepted contact subjects.
var ValidContactSubjects = []ContactSubject{
	SubjectCollaboration,
	SubjectConsultation,
	SubjectThreatIntel,
	SubjectAISecurity,
	SubjectGeneral,
}

// IsValidContactSubject checks whether a subject is in the closed set.
func IsValidContactSubject(s ContactSubject) bool {
	for _, valid := range ValidContactSubjects {
		if s == valid {
			return true
		}
	}
	return false
}

// ContactMessage is a persisted contact form submission.
type ContactMessage struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Subject   ContactSubject `json:"subject"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	IsRead    bool           `json:"is_read"`
	IPAddress string         `json:"ip_address,omitempty"`
}

// ContactMessageCreate is the inbound submission payload.
// Field constraints mirror the persisted entity's invariants: name 1-100
// chars, message 1-2000 chars, well-formed email, subject in the enum.
type ContactMessageCreate struct {
	Name    string         `json:"name" validate:"required,min=1,max=100"`
	Email   string         `json:"email" validate:"required,email"`
	Subject ContactSubject `json:"subject" validate:"required,contactsubject"`
	Message string         `json:"message" validate:"required,min=1,max=2000"`
}

// ContactStats summarizes the contact_messages collection.
type ContactStats struct {
	TotalMessages    int64          `json:"total_messages"`
	UnreadMessages   int64          `json:"unread_messages"`
	RecentMessages   int64          `json:"recent_messages"`
	SubjectBreakdown []SubjectCount `json:"subject_breakdown"`
}

// SubjectCount is one row of the per-subject breakdown, sorted by count
// descending.
type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}
