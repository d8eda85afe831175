package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "expenses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepositoryFreshDatabase(t *testing.T) {
	repo := newTestSQLite(t)

	ledger, outcome, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFresh, outcome)
	assert.Empty(t, ledger)
}

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	repo := newTestSQLite(t)
	ctx := context.Background()

	want := testLedger()
	require.NoError(t, repo.Save(ctx, want))

	got, outcome, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLoaded, outcome)
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Equal(want[i]), "record %d mismatch", i)
	}
}

func TestSQLiteRepositorySaveReplaces(t *testing.T) {
	repo := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testLedger()))
	require.NoError(t, repo.Save(ctx, testLedger()[1:]))

	got, _, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Order preserved after the first record was dropped.
	assert.Equal(t, "Coffee", got[0].Description)
	assert.Equal(t, "Bus ticket", got[1].Description)
}
