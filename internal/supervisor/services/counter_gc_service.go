// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package services

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/soldier0x00/portfolio-backend/internal/blog"
	"github.com/soldier0x00/portfolio-backend/internal/logging"
)

const counterGCInterval = 10 * time.Minute

// CounterGCService runs periodic value-log garbage collection on the
// blog view counter store. Badger's GC must be driven by the
// application; without it the value log grows unbounded on durable
// stores.
type CounterGCService struct {
	counter *blog.ViewCounter
}

// NewCounterGCService creates the GC loop for the given counter store.
func NewCounterGCService(counter *blog.ViewCounter) *CounterGCService {
	return &CounterGCService{counter: counter}
}

// Serve implements suture.Service.
func (s *CounterGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(counterGCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// ErrNoRewrite just means there was nothing to collect.
			if err := s.counter.RunGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				logging.Warn().Err(err).Msg("View counter GC failed")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor log messages.
func (s *CounterGCService) String() string {
	return "counter-gc"
}
