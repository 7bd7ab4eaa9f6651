package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"pet-adoption/internal/adapters/storage"
	"pet-adoption/internal/platform/db"
	"pet-adoption/internal/router"
	"pet-adoption/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func seededAPI(t *testing.T) string {
	t.Helper()
	repos := storage.New(nil)
	f, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.Run(context.Background(), repos, f, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(router.NewRouter(router.Options{Repos: &repos}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestPetsCmd_SearchTable(t *testing.T) {
	url := seededAPI(t)

	out, err := execute(t, "pets", "--api", url, "--search", "retriever")
	require.NoError(t, err)

	// Max está adoptado; solo queda Bella
	assert.Contains(t, out, "Bella")
	assert.NotContains(t, out, "Max ")
	assert.Contains(t, out, "page 1 of 1 (1 pets)  [1]")
}

func TestPetsCmd_SearchByName(t *testing.T) {
	url := seededAPI(t)

	out, err := execute(t, "pets", "--api", url, "--search", "bella")
	require.NoError(t, err)
	assert.Contains(t, out, "No pets found.")

	out, err = execute(t, "pets", "--api", url, "--search", "bella", "--by", "name,breed")
	require.NoError(t, err)
	assert.Contains(t, out, "Bella")
	assert.Contains(t, out, "(1 pets)")

	_, err = execute(t, "pets", "--api", url, "--by", "color")
	assert.ErrorContains(t, err, `unknown search field "color"`)
}

func TestPetsCmd_JSONPage(t *testing.T) {
	url := seededAPI(t)

	out, err := execute(t, "pets", "--api", url, "--json", "--page", "9")
	require.NoError(t, err)

	var pg struct {
		Items      []struct{ Name string }
		Page       int
		TotalPages int
		Total      int
	}
	require.NoError(t, json.Unmarshal([]byte(out), &pg))
	assert.Equal(t, 7, pg.Total)
	assert.Equal(t, 1, pg.Page)
	assert.Len(t, pg.Items, 7)
}

func TestSeedAndMigrate_SQLite(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "cli.db") + "?_time_format=sqlite"
	flags := []string{"--db-driver", "sqlite", "--db", dsn}

	_, err := execute(t, append([]string{"migrate", "up"}, flags...)...)
	require.NoError(t, err)

	out, err := execute(t, append([]string{"seed"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 10 pets, 10 reviews, 3 adoptions")

	conn, err := db.Open(db.DriverSQLite, dsn)
	require.NoError(t, err)
	defer conn.Close()
	var n int
	require.NoError(t, conn.Get(&n, "SELECT COUNT(*) FROM adoptions"))
	assert.Equal(t, 3, n)
}

func TestSeed_MemoryDriverRejected(t *testing.T) {
	_, err := execute(t, "seed", "--db-driver", "memory")
	assert.ErrorContains(t, err, "nothing to migrate or seed")
}
