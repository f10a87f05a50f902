package report_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/report"
)

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	path  string
	store *report.Store
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "ricci.db")
	st, err := report.OpenStore(s.ctx, s.path, nil)
	s.Require().NoError(err)
	s.store = st
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreSuite) TestSaveGet() {
	rec := report.FromResult("es", sampleResult())
	id, err := s.store.Save(s.ctx, rec)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, id)

	got, err := s.store.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(id, got.ID)
	s.Equal(rec, got.Record)
	s.False(got.CreatedAt.IsZero())
}

func (s *StoreSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, uuid.New())
	s.True(errors.Is(err, report.ErrRecordNotFound))
}

func (s *StoreSuite) TestListByLabel() {
	a := report.FromResult("es", sampleResult())
	b := a
	b.Seed = 7
	c := report.FromResult("en", sampleResult())

	ids := map[uuid.UUID]int64{}
	for _, r := range []report.Record{a, b, c} {
		id, err := s.store.Save(s.ctx, r)
		s.Require().NoError(err)
		if r.Label == "es" {
			ids[id] = r.Seed
		}
	}

	list, err := s.store.ListByLabel(s.ctx, "es")
	s.Require().NoError(err)
	s.Len(list, 2)
	for _, st := range list {
		seed, ok := ids[st.ID]
		s.True(ok)
		s.Equal(seed, st.Seed)
		s.Equal("es", st.Label)
	}

	none, err := s.store.ListByLabel(s.ctx, "fr")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *StoreSuite) TestReopenKeepsDataAndSkipsMigrations() {
	id, err := s.store.Save(s.ctx, report.FromResult("es", sampleResult()))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Close())

	st, err := report.OpenStore(s.ctx, s.path, nil)
	s.Require().NoError(err)
	s.store = st
	_, err = st.Get(s.ctx, id)
	s.NoError(err)
	s.NoError(st.Migrate(s.ctx))

	db, err := sql.Open(report.DriverName, s.path)
	s.Require().NoError(err)
	defer db.Close()
	var n int
	s.Require().NoError(db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n))
	s.Equal(2, n)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func TestStore_InMemory(t *testing.T) {
	ctx := context.Background()
	st, err := report.OpenStore(ctx, ":memory:", nil)
	require.NoError(t, err)
	defer st.Close()

	id, err := st.Save(ctx, report.FromResult("x", sampleResult()))
	require.NoError(t, err)
	_, err = st.Get(ctx, id)
	require.NoError(t, err)
}

func TestStore_SaveFailure_Sqlmock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO test_results")).
		WillReturnError(errors.New("disk full"))

	st := report.NewStore(db, nil)
	id, err := st.Save(context.Background(), report.FromResult("es", sampleResult()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, uuid.Nil, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetCorruptRow_Sqlmock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "created_at", "record"}).
		AddRow(id.String(), "2026-01-02T03:04:05Z", "{not json")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, created_at, record FROM test_results WHERE id = ?")).
		WithArgs(id.String()).
		WillReturnRows(rows)

	_, err = report.NewStore(db, nil).Get(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal record")
	assert.False(t, errors.Is(err, report.ErrRecordNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MigrateFailure_Sqlmock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)")).
		WithArgs("000").
		WillReturnError(errors.New("no such table: schema_migrations"))
	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err = report.NewStore(db, nil).Migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin 000_create_schema_migrations.sql")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListQueryFailure_Sqlmock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM test_results WHERE label = ?")).
		WithArgs("es").
		WillReturnError(errors.New("boom"))

	_, err = report.NewStore(db, nil).ListByLabel(context.Background(), "es")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
