// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

package blog

import (
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// viewKeyPrefix namespaces post counters in the key-value store.
const viewKeyPrefix = "blog_views:"

// ViewCounter tracks per-post view counts in BadgerDB. With an empty
// path it runs in-memory and counts reset on restart, which matches the
// catalog's placeholder nature. A path makes counts durable.
type ViewCounter struct {
	db *badger.DB
}

// NewViewCounter opens the counter store. path == "" selects in-memory
// storage.
func NewViewCounter(path string) (*ViewCounter, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB internal logs
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for view counters: %w", err)
	}
	return &ViewCounter{db: db}, nil
}

// Increment bumps a post's counter and returns the new value.
func (c *ViewCounter) Increment(postID string) (int64, error) {
	key := []byte(viewKeyPrefix + postID)

	var views int64
	err := c.db.Update(func(txn *badger.Txn) error {
		current, err := readCounter(txn, key)
		if err != nil {
			return err
		}
		views = current + 1
		return txn.Set(key, []byte(strconv.FormatInt(views, 10)))
	})
	if err != nil {
		return 0, fmt.Errorf("increment view counter: %w", err)
	}
	return views, nil
}

// Get returns a post's counter; missing keys read as zero.
func (c *ViewCounter) Get(postID string) (int64, error) {
	key := []byte(viewKeyPrefix + postID)

	var views int64
	err := c.db.View(func(txn *badger.Txn) error {
		current, err := readCounter(txn, key)
		if err != nil {
			return err
		}
		views = current
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("read view counter: %w", err)
	}
	return views, nil
}

// RunGC triggers one value-log garbage collection pass. Badger returns
// ErrNoRewrite when there is nothing to collect; callers treat that as
// success.
func (c *ViewCounter) RunGC(discardRatio float64) error {
	return c.db.RunValueLogGC(discardRatio)
}

// Close closes the underlying store.
func (c *ViewCounter) Close() error {
	return c.db.Close()
}

func readCounter(txn *badger.Txn, key []byte) (int64, error) {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get counter: %w", err)
	}

	var views int64
	err = item.Value(func(val []byte) error {
		parsed, perr := strconv.ParseInt(string(val), 10, 64)
		if perr != nil {
			return fmt.Errorf("parse counter value: %w", perr)
		}
		views = parsed
		return nil
	})
	return views, err
}
