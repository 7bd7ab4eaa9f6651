package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDSN(t *testing.T) string {
	t.Helper()
	return "file:" + filepath.Join(t.TempDir(), "nested", "pets.db") + "?_pragma=foreign_keys(1)&_time_format=sqlite"
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "./data/pets.db", sqlitePath("file:./data/pets.db?_pragma=foreign_keys(1)"))
	assert.Equal(t, "pets.db", sqlitePath("pets.db"))
	assert.Equal(t, "", sqlitePath(":memory:"))
	assert.Equal(t, "", sqlitePath("file:x?mode=memory&cache=shared"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestMigrate_UpAndDown(t *testing.T) {
	conn, err := Open(DriverSQLite, testDSN(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })

	require.NoError(t, Migrate(conn.DB, DriverSQLite))

	var tables []string
	require.NoError(t, conn.Select(&tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('pets','reviews','adoptions') ORDER BY name`))
	assert.Equal(t, []string{"adoptions", "pets", "reviews"}, tables)

	// idempotente
	require.NoError(t, Migrate(conn.DB, DriverSQLite))

	require.NoError(t, MigrateDown(conn.DB, DriverSQLite))
	tables = nil
	require.NoError(t, conn.Select(&tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('pets','reviews','adoptions')`))
	assert.Empty(t, tables)
}

func TestMigrate_RejectsNegativeAge(t *testing.T) {
	conn, err := Open(DriverSQLite, testDSN(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })
	require.NoError(t, Migrate(conn.DB, DriverSQLite))

	_, err = conn.Exec(`INSERT INTO pets (name, breed, sex, age) VALUES ('x', 'y', 'z', -1)`)
	assert.Error(t, err)
}
