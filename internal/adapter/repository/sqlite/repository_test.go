package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/logger"
)

func newTestRepository(t *testing.T) *SampleRepository {
	t.Helper()

	repo, err := NewSampleRepository(":memory:", logger.NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testSample(path string) *domain.Sample {
	return &domain.Sample{
		Path:       path,
		Name:       filepath.Base(path),
		Format:     "wav",
		SampleRate: 44100,
		Size:       2048,
	}
}

func TestSaveAssignsID(t *testing.T) {
	repo := newTestRepository(t)

	s := testSample("/samples/kick.wav")
	require.NoError(t, repo.Save(s))
	assert.NotZero(t, s.ID)
}

func TestSaveIsIdempotentPerPath(t *testing.T) {
	repo := newTestRepository(t)

	first := testSample("/samples/snare.wav")
	require.NoError(t, repo.Save(first))

	// Re-saving the same path keeps the original row
	second := testSample("/samples/snare.wav")
	second.Name = "renamed"
	require.NoError(t, repo.Save(second))
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.ByPath("/samples/snare.wav")
	require.NoError(t, err)
	assert.Equal(t, "snare.wav", got.Name)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestByPathNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.ByPath("/samples/missing.wav")
	assert.ErrorIs(t, err, domain.ErrSampleNotFound)
}

func TestAllOrderedByName(t *testing.T) {
	repo := newTestRepository(t)

	for _, p := range []string{"/s/zebra.wav", "/s/apple.wav", "/s/mango.wav"} {
		require.NoError(t, repo.Save(testSample(p)))
	}

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "apple.wav", all[0].Name)
	assert.Equal(t, "mango.wav", all[1].Name)
	assert.Equal(t, "zebra.wav", all[2].Name)
}

func TestRoundTripFields(t *testing.T) {
	repo := newTestRepository(t)

	s := &domain.Sample{
		Path:       "/samples/loop.flac",
		Name:       "Big Loop",
		Format:     "flac",
		SampleRate: 96000,
		Size:       1 << 20,
	}
	require.NoError(t, repo.Save(s))

	got, err := repo.ByPath(s.Path)
	require.NoError(t, err)
	assert.Equal(t, *s, *got)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	repo, err := NewSampleRepository(dbPath, logger.NewTestLogger())
	require.NoError(t, err)
	require.NoError(t, repo.Save(testSample("/samples/hat.wav")))
	require.NoError(t, repo.Close())

	reopened, err := NewSampleRepository(dbPath, logger.NewTestLogger())
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.ByPath("/samples/hat.wav")
	require.NoError(t, err)
	assert.Equal(t, "hat.wav", got.Name)
}
