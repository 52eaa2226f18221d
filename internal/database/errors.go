// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// errors.go - Sentinel errors for the persistence layer
package database

import "errors"

// ErrNotFound indicates no record matched the given id or email.
// Handlers translate it into a 404 response.
var ErrNotFound = errors.New("record not found")
