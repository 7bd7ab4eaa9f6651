package sqlstore

import (
	"path/filepath"
	"testing"

	"pet-adoption/internal/platform/db"

	"github.com/stretchr/testify/require"
)

func TestStore_SQLite(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "pets.db") + "?_pragma=foreign_keys(1)&_time_format=sqlite"

	conn, err := db.Open(db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.Migrate(conn.DB, db.DriverSQLite))

	runStoreSuite(t, New(conn))
}
