// Package sqlite provides the SQLite-backed sample catalog.
//
// The catalog lives in a single table keyed by absolute file path, so
// re-importing a directory is idempotent: known paths are skipped, new ones
// inserted.
package sqlite

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	id          INTEGER PRIMARY KEY,
	path        TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	format      TEXT NOT NULL,
	sample_rate INTEGER NOT NULL,
	size        INTEGER NOT NULL
);
`

// SampleRepository implements ports.SampleRepository on a SQLite database.
//
// Thread-safe: database/sql serializes access to the underlying connection.
type SampleRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSampleRepository opens (creating if necessary) the catalog database at
// path and ensures the schema exists. Use ":memory:" for tests.
func NewSampleRepository(path string, logger *slog.Logger) (*SampleRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, domain.NewRepositoryError("open", "opening catalog database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, domain.NewRepositoryError("open", "creating samples table", err)
	}

	logger.Info("sample catalog opened", slog.String("path", path))

	return &SampleRepository{db: db, logger: logger}, nil
}

// Save inserts the sample unless its path is already cataloged, then fills
// in the row ID either way.
func (r *SampleRepository) Save(s *domain.Sample) error {
	_, err := r.db.Exec(
		`INSERT OR IGNORE INTO samples (path, name, format, sample_rate, size)
		 VALUES (?, ?, ?, ?, ?)`,
		s.Path, s.Name, s.Format, s.SampleRate, s.Size,
	)
	if err != nil {
		return domain.NewRepositoryError("save", "inserting sample", err)
	}

	row := r.db.QueryRow(`SELECT id FROM samples WHERE path = ?`, s.Path)
	if err := row.Scan(&s.ID); err != nil {
		return domain.NewRepositoryError("save", "reading back sample id", err)
	}

	return nil
}

// All returns every cataloged sample ordered by name.
func (r *SampleRepository) All() ([]domain.Sample, error) {
	rows, err := r.db.Query(
		`SELECT id, path, name, format, sample_rate, size
		 FROM samples ORDER BY name`)
	if err != nil {
		return nil, domain.NewRepositoryError("all", "querying samples", err)
	}
	defer func() { _ = rows.Close() }()

	var samples []domain.Sample
	for rows.Next() {
		var s domain.Sample
		if err := rows.Scan(&s.ID, &s.Path, &s.Name, &s.Format, &s.SampleRate, &s.Size); err != nil {
			return nil, domain.NewRepositoryError("all", "scanning sample row", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewRepositoryError("all", "iterating sample rows", err)
	}

	return samples, nil
}

// ByPath returns the sample cataloged under path, or ErrSampleNotFound.
func (r *SampleRepository) ByPath(path string) (*domain.Sample, error) {
	row := r.db.QueryRow(
		`SELECT id, path, name, format, sample_rate, size
		 FROM samples WHERE path = ?`, path)

	var s domain.Sample
	if err := row.Scan(&s.ID, &s.Path, &s.Name, &s.Format, &s.SampleRate, &s.Size); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSampleNotFound
		}
		return nil, domain.NewRepositoryError("by_path", "querying sample", err)
	}

	return &s, nil
}

// Close closes the underlying database.
func (r *SampleRepository) Close() error {
	return r.db.Close()
}

// Verify that SampleRepository implements the repository port
var _ ports.SampleRepository = (*SampleRepository)(nil)
