package testutil

import (
	"database/sql"
	"testing"

	"github.com/jplancaster/roadmapper/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated in-memory project store, closed when the
// test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := db.Open(":memory:")
	require.NoError(t, err, "opening in-memory store")
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
