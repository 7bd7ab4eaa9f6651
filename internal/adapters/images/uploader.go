package images

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"pet-adoption/internal/platform/blob"
	"pet-adoption/internal/ports/media"
)

var whitespaceRun = regexp.MustCompile(`[\s\x0B\p{Z}\x{FEFF}]+`)

// Uploader implementa media.ImageSaver sobre un blob.Store.
type Uploader struct {
	store blob.Store
	now   func() time.Time
}

func NewUploader(store blob.Store) *Uploader {
	return &Uploader{store: store, now: time.Now}
}

// FileName arma "{unix-millis}-{nombre original con espacios -> '-'}".
func FileName(now time.Time, original string) string {
	name := strings.ReplaceAll(original, `\`, "/")
	name = path.Base(name)
	if name == "." || name == "/" {
		name = ""
	}
	name = whitespaceRun.ReplaceAllString(name, "-")
	if name == "" {
		name = "upload"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), name)
}

func (u *Uploader) SaveImage(ctx context.Context, up media.Upload) (string, error) {
	if up.Body == nil {
		return "", fmt.Errorf("save image: empty upload")
	}
	name := FileName(u.now(), up.Filename)
	if err := u.store.Save(ctx, name, up.Body, up.ContentType); err != nil {
		return "", fmt.Errorf("save image %s: %w", name, err)
	}
	return u.store.URL(name), nil
}

var _ media.ImageSaver = (*Uploader)(nil)
