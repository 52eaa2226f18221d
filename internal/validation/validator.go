// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// Package validation provides struct validation using go-playground/validator
// v10. It exposes a thread-safe singleton validator with one custom rule,
// contactsubject, covering the closed contact-subject enum.
//
// Example:
//
//	var req models.ContactMessageCreate
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // verr.Details() carries per-field messages for the 422 envelope
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/soldier0x00/portfolio-backend/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the singleton validator instance.
// The instance caches struct metadata, so sharing it is both safe and fast.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// contactsubject restricts a field to the closed subject enum.
		// Registration only fails for empty tags or nil funcs, neither of
		// which can happen here.
		_ = validate.RegisterValidation("contactsubject", func(fl validator.FieldLevel) bool {
			return models.IsValidContactSubject(models.ContactSubject(fl.Field().String()))
		})
	})
	return validate
}

// FieldError is a single field validation failure with a client-facing
// message.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// Error returns the human-readable message.
func (e *FieldError) Error() string {
	return e.Message
}

// RequestValidationError aggregates all field failures for one request.
type RequestValidationError struct {
	errors []FieldError
}

// Errors returns the individual field errors.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.errors
}

// Error implements the error interface.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(ve.errors))
	for _, fe := range ve.errors {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}

// Details converts the failures into the API's validation detail shape.
func (ve *RequestValidationError) Details() []models.ValidationDetail {
	details := make([]models.ValidationDetail, 0, len(ve.errors))
	for _, fe := range ve.errors {
		details = append(details, models.ValidationDetail{
			Field:   fe.Field,
			Message: fe.Message,
		})
	}
	return details
}

// ValidateStruct validates v against its struct tags.
// Returns nil when validation passes.
func ValidateStruct(v interface{}) *RequestValidationError {
	err := GetValidator().Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return &RequestValidationError{errors: []FieldError{{
			Field:   "",
			Message: "invalid value passed to validator",
		}}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestValidationError{errors: []FieldError{{
			Field:   "",
			Message: err.Error(),
		}}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: messageForTag(fe),
		})
	}
	return &RequestValidationError{errors: fieldErrors}
}

// messageForTag translates a validator tag failure into a client-facing
// message.
func messageForTag(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "contactsubject":
		return fmt.Sprintf("%s must be one of: %s", field, joinSubjects())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// joinSubjects renders the subject enum for error messages.
func joinSubjects() string {
	names := make([]string, 0, len(models.ValidContactSubjects))
	for _, s := range models.ValidContactSubjects {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
