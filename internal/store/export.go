package store

import (
	"context"

	"github.com/rcliao/contact-book/internal/book"
	"github.com/rcliao/contact-book/internal/model"
)

// ExportAll returns every saved contact in insertion order.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Contact, error) {
	b, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return b.Contacts(), nil
}

// Import merges contacts into the saved book and saves it. A contact whose
// name already exists replaces the saved record. Nothing is saved when any
// contact fails validation.
func (s *SQLiteStore) Import(ctx context.Context, contacts []model.Contact) (int, error) {
	b, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}

	records := make([]*book.Record, 0, len(contacts))
	for _, c := range contacts {
		r, err := book.RecordFromContact(c)
		if err != nil {
			return 0, err
		}
		records = append(records, r)
	}
	for _, r := range records {
		b.Put(r)
	}

	if err := s.Save(ctx, b); err != nil {
		return 0, err
	}
	return len(records), nil
}
