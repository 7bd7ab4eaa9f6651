package media

import (
	"context"
	"io"
)

// Upload es un archivo recibido en un form multipart (parte "file").
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ImageSaver persiste una imagen subida y devuelve su path/URL público.
// Los dominios (pets, reviews) dependen de este puerto, no del storage concreto.
type ImageSaver interface {
	SaveImage(ctx context.Context, up Upload) (string, error)
}
