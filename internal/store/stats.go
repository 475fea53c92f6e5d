package store

import (
	"context"
	"os"
	"time"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string     `json:"db_path"`
	DBSizeBytes   int64      `json:"db_size_bytes"`
	SchemaVersion int        `json:"schema_version"`
	Contacts      int        `json:"contacts"`
	Phones        int        `json:"phones"`
	Birthdays     int        `json:"birthdays"`
	SnapshotID    string     `json:"snapshot_id,omitempty"`
	SavedAt       *time.Time `json:"saved_at,omitempty"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	v, err := s.schemaVersion(ctx)
	if err != nil {
		return st, err
	}
	st.SchemaVersion = v

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&st.Contacts)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM phones`).Scan(&st.Phones)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts WHERE birthday IS NOT NULL`).Scan(&st.Birthdays)

	id, savedAt, ok, err := s.LastSnapshot(ctx)
	if err != nil {
		return st, err
	}
	if ok {
		st.SnapshotID = id
		st.SavedAt = &savedAt
	}

	return st, nil
}
