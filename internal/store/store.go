// Package store persists the contact book as a versioned SQLite snapshot.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/contact-book/internal/book"
)

// SchemaVersion is the snapshot layout this build reads and writes.
const SchemaVersion = 1

// ErrUnsupportedSchema is returned for a snapshot written by a newer layout.
var ErrUnsupportedSchema = errors.New("unsupported snapshot schema")

// Store defines the snapshot storage interface.
type Store interface {
	// Load returns the last saved book, or an empty book when nothing was
	// saved yet.
	Load(ctx context.Context) (*book.Book, error)

	// Save replaces the stored snapshot with the full content of b.
	Save(ctx context.Context, b *book.Book) error

	// Close closes the store.
	Close() error
}
