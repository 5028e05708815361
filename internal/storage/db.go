// Package storage provides the appointment store for apptremind.
// The store is an in-memory Badger instance; nothing is written to disk.
package storage

import (
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/apptremind/internal/errors"
)

// DB wraps an in-memory Badger database.
type DB struct {
	db *badger.DB
}

// Open creates a fresh in-memory database.
func Open() (*DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("open", "cannot open appointment store", err)
	}

	return &DB{db: db}, nil
}

// Close releases the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Badger returns the underlying Badger database for advanced operations.
func (d *DB) Badger() *badger.DB {
	return d.db
}
