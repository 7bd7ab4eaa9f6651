package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore escribe en un directorio servido estáticamente (ej. /images/*).
type LocalStore struct {
	dir       string
	urlPrefix string
}

func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("local store: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local store: create dir: %w", err)
	}
	prefix := "/" + strings.Trim(urlPrefix, "/")
	return &LocalStore{dir: dir, urlPrefix: prefix}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

// Save escribe primero a un temporal y renombra, así nunca se sirve un archivo a medias.
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader, _ string) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}

	tmp := filepath.Join(s.dir, ".upload-"+uuid.NewString())
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("local store: create temp: %w", err)
	}

	if _, err := io.Copy(f, ctxReader{ctx: ctx, r: r}); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("local store: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("local store: close %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("local store: rename %s: %w", name, err)
	}
	return nil
}

func (s *LocalStore) URL(name string) string {
	return path.Join(s.urlPrefix, name)
}

func (s *LocalStore) path(name string) (string, error) {
	clean := filepath.Base(filepath.Clean("/" + name))
	if clean == "/" || clean == "." || clean != name {
		return "", fmt.Errorf("local store: invalid file name %q", name)
	}
	return filepath.Join(s.dir, clean), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
