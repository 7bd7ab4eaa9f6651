package seed

import (
	"context"
	"path/filepath"
	"testing"

	"pet-adoption/internal/adapters/storage"
	"pet-adoption/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixtures(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.Len(t, f.Pets, 10)
	assert.Len(t, f.Reviews, 10)
	assert.Len(t, f.Adoptions, 3)
	assert.Equal(t, "#CE566D", f.Pets[0].PrimaryCol)
	assert.Equal(t, "Oliver", f.Adoptions[1].Pet)
}

func runSeed(t *testing.T, repos storage.Repos) {
	t.Helper()
	ctx := context.Background()

	f, err := Default()
	require.NoError(t, err)

	// dos veces: Reset deja la base como nueva
	for i := 0; i < 2; i++ {
		res, err := Run(ctx, repos, f, nil)
		require.NoError(t, err)
		assert.Equal(t, Result{Pets: 10, Reviews: 10, Adoptions: 3}, res)
	}

	all, err := repos.Pets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	available, err := repos.Pets.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, available, 7)
	for _, p := range available {
		assert.NotContains(t, []string{"Luna", "Oliver", "Max"}, p.Name)
	}

	revs, err := repos.Reviews.List(ctx)
	require.NoError(t, err)
	assert.Len(t, revs, 10)
}

func TestRun_Memory(t *testing.T) {
	runSeed(t, storage.New(nil))
}

func TestRun_SQLite(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "seed.db") + "?_time_format=sqlite"
	conn, err := db.Open(db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.Migrate(conn.DB, db.DriverSQLite))

	runSeed(t, storage.New(conn))
}

func TestRun_UnknownPet(t *testing.T) {
	f := Fixtures{Adoptions: []AdoptionFixture{{Name: "Ann", Pet: "Ghost"}}}
	_, err := Run(context.Background(), storage.New(nil), f, nil)
	assert.ErrorContains(t, err, `unknown pet "Ghost"`)
}
