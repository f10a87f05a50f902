// File: store.go
// Role: SQLite persistence of records (pure-Go modernc driver).
// Layout:
//   - Indexed columns hold the headline statistics for querying.
//   - The full record is stored as JSON and is the source of truth on read.

package report

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DriverName is the database/sql driver used by OpenStore.
const DriverName = "sqlite"

// ErrRecordNotFound is returned by Get for an unknown ID.
var ErrRecordNotFound = errors.New("report: record not found")

// Stored is a persisted record with its identity.
type Stored struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Record
}

// Store persists records in SQLite.
type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
	now func() time.Time
}

// OpenStore opens (or creates) the database at path and applies pending
// migrations. Use ":memory:" for a private in-memory database.
func OpenStore(ctx context.Context, dbPath string, log *zap.SugaredLogger) (*Store, error) {
	log = logger.Named(log, "report")
	log.Debugw("opening store", logger.FieldPath, dbPath)

	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, errors.Wrapf(err, "report: open %s", dbPath)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "report: %s", pragma)
		}
	}

	s := NewStore(db, log)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore wraps an open database without migrating it.
func NewStore(db *sql.DB, log *zap.SugaredLogger) *Store {
	return &Store{db: db, log: logger.OrNop(log), now: time.Now}
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Migrate applies the embedded migrations not yet recorded in
// schema_migrations, each in its own transaction.
func (s *Store) Migrate(ctx context.Context) error {
	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		return errors.Wrap(err, "report: read migrations")
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	applied := 0
	for _, name := range files {
		version := strings.SplitN(name, "_", 2)[0]

		var exists bool
		err := s.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)", version).Scan(&exists)
		if err != nil {
			// Only the first migration may run before schema_migrations exists.
			if version != "000" {
				return errors.Wrapf(err, "report: schema_migrations missing before %s", name)
			}
		} else if exists {
			continue
		}

		body, err := migrations.ReadFile(path.Join("migrations", name))
		if err != nil {
			return errors.Wrapf(err, "report: read %s", name)
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrapf(err, "report: begin %s", name)
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "report: execute %s", name)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "report: record %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "report: commit %s", name)
		}
		applied++
		s.log.Debugw("migration applied", "migration", name)
	}
	s.log.Debugw("migrations complete", logger.FieldCount, applied)
	return nil
}

const insertRecord = `INSERT INTO test_results
	(id, label, null_variant, m_requested, m_valid, alpha, kappa_real,
	 delta_kappa, p_mc, cliffs_delta, seed, cancelled, record, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Save stores rec under a fresh random ID.
func (s *Store) Save(ctx context.Context, rec Record) (uuid.UUID, error) {
	id := uuid.New()
	body, err := json.Marshal(rec)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "report: marshal record")
	}
	created := s.now().UTC().Format(time.RFC3339Nano)

	_, err = s.db.ExecContext(ctx, insertRecord,
		id.String(), rec.Label, rec.NullVariant, rec.MRequested, rec.MValid,
		rec.Alpha, rec.KappaReal, rec.DeltaKappa, rec.PMC, rec.CliffsDelta,
		rec.Seed, rec.Cancelled, string(body), created)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "report: insert record %q", rec.Label)
	}
	s.log.Infow("record saved",
		"id", id.String(),
		logger.FieldLabel, rec.Label,
		logger.FieldVariant, rec.NullVariant)
	return id, nil
}

// Get loads the record with the given ID.
//
// Errors:
//   - ErrRecordNotFound for an unknown ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Stored, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, created_at, record FROM test_results WHERE id = ?", id.String())
	st, err := scanStored(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrRecordNotFound, "report: id %s", id)
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// ListByLabel returns every record stored under label, oldest first.
func (s *Store) ListByLabel(ctx context.Context, label string) ([]Stored, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, record FROM test_results WHERE label = ? ORDER BY created_at, id", label)
	if err != nil {
		return nil, errors.Wrapf(err, "report: query label %q", label)
	}
	defer rows.Close()

	var out []Stored
	for rows.Next() {
		st, err := scanStored(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "report: iterate label %q", label)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStored(sc scanner) (*Stored, error) {
	var (
		id, created string
		body        []byte
	)
	if err := sc.Scan(&id, &created, &body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "report: scan record")
	}
	st := &Stored{}
	var err error
	if st.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.Wrapf(err, "report: bad id %q", id)
	}
	if st.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, errors.Wrapf(err, "report: bad timestamp %q", created)
	}
	if err := json.Unmarshal(body, &st.Record); err != nil {
		return nil, errors.Wrapf(err, "report: unmarshal record %s", id)
	}
	return st, nil
}
