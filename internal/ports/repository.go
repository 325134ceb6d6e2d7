// Package ports define repository interfaces for data persistence abstraction.
// These interfaces enable the repository pattern and allow swapping persistence mechanisms.
package ports

import (
	"github.com/henrybley/sample-duck/internal/domain"
)

// SampleRepository handles persistence of the sample catalog.
// The catalog is keyed on the file path; saving an already known path is a
// no-op rather than an error, mirroring an import that re-scans a folder.
//
// Thread-safety: Implementations must be thread-safe.
type SampleRepository interface {
	// Save persists a catalog entry. If an entry with the same path already
	// exists it is left untouched. On success the entry's ID is populated.
	Save(sample *domain.Sample) error

	// All returns every catalog entry ordered by ID.
	All() ([]domain.Sample, error)

	// ByPath retrieves a catalog entry by file path.
	// Returns domain.ErrSampleNotFound if the path is unknown.
	ByPath(path string) (*domain.Sample, error)

	// Close releases the underlying store.
	Close() error
}
