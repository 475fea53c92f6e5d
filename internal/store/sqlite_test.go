package store

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/contact-book/internal/book"
	"github.com/rcliao/contact-book/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"), nil)
	require.NoError(t, err, "create store")
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleBook(t *testing.T) *book.Book {
	t.Helper()
	b := book.New()
	for _, step := range [][2]string{
		{"Ann", "1234567890"},
		{"Ann", "0987654321"},
		{"Bob", "0000000001"},
		{"Cid", "5555555555"},
	} {
		_, err := b.AddOrUpdatePhone(step[0], step[1])
		require.NoError(t, err)
	}
	_, err := b.SetBirthdayFor("Bob", "29.02.2000")
	require.NoError(t, err)
	return b
}

func TestLoadEmpty(t *testing.T) {
	s := newTestStore(t)

	b, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	b := sampleBook(t)

	require.NoError(t, s.Save(ctx, b))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.Contacts(), got.Contacts())
	assert.Equal(t, slices.Collect(b.ListAll()), slices.Collect(got.ListAll()))
}

func TestSaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	b := sampleBook(t)
	require.NoError(t, s.Save(ctx, b))

	b.Remove("Ann")
	b.ReplacePhone("Cid", "1111111111")
	b.AddOrUpdatePhone("Ann", "2222222222")
	require.NoError(t, s.Save(ctx, b))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Contact{
		{Name: "Bob", Phones: []string{"0000000001"}, Birthday: "29.02.2000"},
		{Name: "Cid", Phones: []string{"1111111111"}},
		{Name: "Ann", Phones: []string{"2222222222"}},
	}, got.Contacts())
}

func TestSnapshotSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "contacts.db")

	s, err := NewSQLiteStore(dbPath, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, sampleBook(t)))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(dbPath, nil)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
	bd, status := got.BirthdayFor("Bob")
	assert.Equal(t, book.Found, status)
	assert.Equal(t, "29.02.2000", bd.String())
}

func TestUnsupportedSchema(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.db.ExecContext(ctx,
		`UPDATE snapshot_meta SET value = ? WHERE key = ?`, strconv.Itoa(SchemaVersion+1), metaSchemaVersion)
	require.NoError(t, err)

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrUnsupportedSchema)
	assert.ErrorIs(t, s.Save(ctx, book.New()), ErrUnsupportedSchema)
}

func TestCorruptSnapshotFailsLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.db.ExecContext(ctx, `INSERT INTO contacts (seq, name, birthday) VALUES (1, 'Ann', '31.04.1990')`)
	require.NoError(t, err)

	_, err = s.Load(ctx)
	assert.Error(t, err)
}

func TestLastSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, _, ok, err := s.LastSnapshot(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, book.New()))
	first, savedAt, ok, err := s.LastSnapshot(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, first, 26, "snapshot ids are ULIDs")
	assert.False(t, savedAt.IsZero())

	require.NoError(t, s.Save(ctx, book.New()))
	second, _, _, err := s.LastSnapshot(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteStore(dbPath, nil)
	require.NoError(t, err)
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "stats.db")
	s, err := NewSQLiteStore(dbPath, nil)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, sampleBook(t)))

	st, err := s.Stats(ctx, dbPath)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, st.SchemaVersion)
	assert.Equal(t, 3, st.Contacts)
	assert.Equal(t, 4, st.Phones)
	assert.Equal(t, 1, st.Birthdays)
	assert.NotEmpty(t, st.SnapshotID)
	assert.NotNil(t, st.SavedAt)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Save(ctx, sampleBook(t)))

	exported, err := s.ExportAll(ctx)
	require.NoError(t, err)
	require.Len(t, exported, 3)
	assert.Equal(t, "Ann", exported[0].Name)

	n, err := s.Import(ctx, []model.Contact{
		{Name: "Ann", Phones: []string{"9999999999"}},
		{Name: "Dee", Phones: []string{"8888888888"}, Birthday: "01.01.1990"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Len())
	ann, _ := got.Lookup("Ann")
	assert.Equal(t, []book.Phone{"9999999999"}, ann.Phones())

	_, err = s.Import(ctx, []model.Contact{
		{Name: "Eve", Phones: []string{"7777777777"}},
		{Name: "Fay", Phones: []string{"bad"}},
	})
	assert.Error(t, err)
	got, _ = s.Load(ctx)
	_, ok := got.Lookup("Eve")
	assert.False(t, ok, "a failed import saves nothing")
}
