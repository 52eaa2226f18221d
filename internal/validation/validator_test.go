// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package validation

import (
	"strings"
	"testing"

	"github.com/soldier0x00/portfolio-backend/internal/models"
)

func validContactCreate() models.ContactMessageCreate {
	return models.ContactMessageCreate{
		Name:    "Jane Analyst",
		Email:   "jane@example.com",
		Subject: models.SubjectThreatIntel,
		Message: "Interested in your threat intel write-ups.",
	}
}

func TestValidateContactMessageCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*models.ContactMessageCreate)
		wantField string // empty means valid
	}{
		{
			name:   "valid submission",
			mutate: func(c *models.ContactMessageCreate) {},
		},
		{
			name:      "missing name",
			mutate:    func(c *models.ContactMessageCreate) { c.Name = "" },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(c *models.ContactMessageCreate) { c.Name = strings.Repeat("a", 101) },
			wantField: "name",
		},
		{
			name:      "malformed email",
			mutate:    func(c *models.ContactMessageCreate) { c.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "missing email",
			mutate:    func(c *models.ContactMessageCreate) { c.Email = "" },
			wantField: "email",
		},
		{
			name:      "unknown subject",
			mutate:    func(c *models.ContactMessageCreate) { c.Subject = "spam" },
			wantField: "subject",
		},
		{
			name:      "missing subject",
			mutate:    func(c *models.ContactMessageCreate) { c.Subject = "" },
			wantField: "subject",
		},
		{
			name:      "missing message",
			mutate:    func(c *models.ContactMessageCreate) { c.Message = "" },
			wantField: "message",
		},
		{
			name:      "message too long",
			mutate:    func(c *models.ContactMessageCreate) { c.Message = strings.Repeat("x", 2001) },
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			create := validContactCreate()
			tt.mutate(&create)

			verr := ValidateStruct(&create)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("expected valid, got: %v", verr)
				}
				return
			}

			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			found := false
			for _, fe := range verr.Errors() {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %q, got %v", tt.wantField, verr.Errors())
			}
		})
	}
}

func TestValidateEverySubject(t *testing.T) {
	t.Parallel()

	for _, subject := range models.ValidContactSubjects {
		create := validContactCreate()
		create.Subject = subject
		if verr := ValidateStruct(&create); verr != nil {
			t.Errorf("subject %q rejected: %v", subject, verr)
		}
	}
}

func TestValidateNewsletterSubscribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "reader@example.com", false},
		{"empty email", "", true},
		{"malformed email", "reader@", true},
		{"missing domain", "reader", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&models.NewsletterSubscribe{Email: tt.email})
			if (verr != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() = %v, wantErr %v", verr, tt.wantErr)
			}
		})
	}
}

func TestValidationDetails(t *testing.T) {
	t.Parallel()

	create := models.ContactMessageCreate{}
	verr := ValidateStruct(&create)
	if verr == nil {
		t.Fatal("expected validation error for empty struct")
	}

	details := verr.Details()
	if len(details) != 4 {
		t.Fatalf("expected 4 field details, got %d: %v", len(details), details)
	}
	for _, d := range details {
		if d.Field == "" || d.Message == "" {
			t.Errorf("detail missing field or message: %+v", d)
		}
	}

	if verr.Error() == "" {
		t.Error("expected non-empty aggregate error message")
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance on repeated calls")
	}
}
