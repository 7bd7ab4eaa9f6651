package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveAndURL(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	s, err := NewLocalStore(dir, "images/")
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "1700000000000-cat.png", strings.NewReader("png-bytes"), "image/png"))

	b, err := os.ReadFile(filepath.Join(dir, "1700000000000-cat.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))
	assert.Equal(t, "/images/1700000000000-cat.png", s.URL("1700000000000-cat.png"))

	// sin temporales colgando
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), "/images")
	require.NoError(t, err)

	err = s.Save(context.Background(), "../escape.png", strings.NewReader("x"), "")
	assert.Error(t, err)
	err = s.Save(context.Background(), "a/b.png", strings.NewReader("x"), "")
	assert.Error(t, err)
}

func TestLocalStore_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "/images")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.Save(ctx, "x.png", strings.NewReader("data"), "")
	require.ErrorIs(t, err, context.Canceled)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}
