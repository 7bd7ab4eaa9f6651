package images

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/platform/blob"
	"pet-adoption/internal/ports/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	cases := map[string]string{
		"my cat.png":            "1700000000123-my-cat.png",
		"a   b\tc.jpg":          "1700000000123-a-b-c.jpg",
		"tab\vbed\u00a0x.png":   "1700000000123-tab-bed-x.png",
		"nospace.webp":          "1700000000123-nospace.webp",
		`C:\Users\me\dog 1.png`: "1700000000123-dog-1.png",
		"../../etc/passwd":      "1700000000123-passwd",
		"":                      "1700000000123-upload",
	}
	for in, want := range cases {
		assert.Equal(t, want, FileName(now, in), "input %q", in)
	}
}

func TestUploader_SaveImage(t *testing.T) {
	dir := t.TempDir()
	store, err := blob.NewLocalStore(dir, "/images")
	require.NoError(t, err)

	u := NewUploader(store)
	u.now = func() time.Time { return time.UnixMilli(42) }

	url, err := u.SaveImage(context.Background(), media.Upload{
		Filename:    "happy dog.png",
		ContentType: "image/png",
		Body:        strings.NewReader("img"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/images/42-happy-dog.png", url)

	b, err := os.ReadFile(filepath.Join(dir, "42-happy-dog.png"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(b))
}

func TestUploader_NilBody(t *testing.T) {
	store, err := blob.NewLocalStore(t.TempDir(), "/images")
	require.NoError(t, err)

	_, err = NewUploader(store).SaveImage(context.Background(), media.Upload{Filename: "x.png"})
	assert.Error(t, err)
}
