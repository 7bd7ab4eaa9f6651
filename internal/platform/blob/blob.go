package blob

import (
	"context"
	"io"
)

// Store guarda archivos públicos (imágenes subidas) y resuelve su URL pública.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, contentType string) error
	URL(name string) string
}
