package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/rcliao/contact-book/internal/book"
	"github.com/rcliao/contact-book/internal/model"
)

const (
	metaSchemaVersion = "schema_version"
	metaSnapshotID    = "snapshot_id"
	metaSavedAt       = "saved_at"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
	logger  *zap.Logger
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  logger,
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshot_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contacts (
		seq      INTEGER PRIMARY KEY,
		name     TEXT NOT NULL UNIQUE,
		birthday TEXT
	);

	CREATE TABLE IF NOT EXISTS phones (
		contact_seq INTEGER NOT NULL REFERENCES contacts(seq) ON DELETE CASCADE,
		pos         INTEGER NOT NULL,
		phone       TEXT NOT NULL,
		PRIMARY KEY (contact_seq, pos)
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// A fresh database is stamped with the current layout
	_, err := s.db.Exec(`INSERT OR IGNORE INTO snapshot_meta (key, value) VALUES (?, ?)`,
		metaSchemaVersion, strconv.Itoa(SchemaVersion))
	return err
}

func (s *SQLiteStore) schemaVersion(ctx context.Context) (int, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM snapshot_meta WHERE key = ?`, metaSchemaVersion).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse schema version %q: %w", v, err)
	}
	return n, nil
}

func (s *SQLiteStore) checkSchema(ctx context.Context) error {
	v, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}
	if v != SchemaVersion {
		return fmt.Errorf("%w: version %d, supported %d", ErrUnsupportedSchema, v, SchemaVersion)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*book.Book, error) {
	if err := s.checkSchema(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT c.seq, c.name, c.birthday, p.phone
		 FROM contacts c LEFT JOIN phones p ON p.contact_seq = c.seq
		 ORDER BY c.seq, p.pos`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.Contact
	lastSeq := int64(-1)
	for rows.Next() {
		var seq int64
		var name string
		var birthday, phone sql.NullString
		if err := rows.Scan(&seq, &name, &birthday, &phone); err != nil {
			return nil, err
		}
		if seq != lastSeq {
			contacts = append(contacts, model.Contact{Name: name, Birthday: birthday.String})
			lastSeq = seq
		}
		if phone.Valid {
			c := &contacts[len(contacts)-1]
			c.Phones = append(c.Phones, phone.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	b, err := book.Restore(contacts)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}

	s.logger.Info("Snapshot loaded", zap.Int("contacts", b.Len()))
	return b, nil
}

func (s *SQLiteStore) Save(ctx context.Context, b *book.Book) error {
	if err := s.checkSchema(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM phones`); err != nil {
		return fmt.Errorf("clear phones: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}

	contacts := b.Contacts()
	for i, c := range contacts {
		seq := i + 1
		var birthday *string
		if c.Birthday != "" {
			birthday = &c.Birthday
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (seq, name, birthday) VALUES (?, ?, ?)`,
			seq, c.Name, birthday)
		if err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}
		for pos, phone := range c.Phones {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO phones (contact_seq, pos, phone) VALUES (?, ?, ?)`,
				seq, pos, phone)
			if err != nil {
				return fmt.Errorf("insert phone: %w", err)
			}
		}
	}

	id := s.newID()
	now := time.Now().UTC().Format(time.RFC3339)
	for key, value := range map[string]string{metaSnapshotID: id, metaSavedAt: now} {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
		if err != nil {
			return fmt.Errorf("write snapshot meta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("Snapshot saved",
		zap.String("snapshot_id", id),
		zap.Int("contacts", len(contacts)))
	return nil
}

// LastSnapshot returns the id and time of the most recent Save. ok is false
// when the database was never saved to.
func (s *SQLiteStore) LastSnapshot(ctx context.Context) (id string, savedAt time.Time, ok bool, err error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM snapshot_meta WHERE key IN (?, ?)`, metaSnapshotID, metaSavedAt)
	if err != nil {
		return "", time.Time{}, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return "", time.Time{}, false, err
		}
		switch key {
		case metaSnapshotID:
			id = value
		case metaSavedAt:
			savedAt, _ = time.Parse(time.RFC3339, value)
		}
	}
	if err := rows.Err(); err != nil {
		return "", time.Time{}, false, err
	}
	return id, savedAt, id != "", nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
