package httpx

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"pet-adoption/internal/ports/media"
)

// memoria máxima del form antes de volcar partes a disco
const formMemory = 8 << 20

func IsMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// Form envuelve un multipart ya parseado con lookups que distinguen "ausente" de "vacío".
type Form struct {
	mf *multipart.Form
}

// ParseForm parsea multipart/form-data limitando el body a maxBytes.
func ParseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) (*Form, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	if err := r.ParseMultipartForm(formMemory); err != nil {
		return nil, fmt.Errorf("parse multipart: %w", err)
	}
	return &Form{mf: r.MultipartForm}, nil
}

// Close borra los temporales que ParseMultipartForm haya dejado en disco.
func (f *Form) Close() {
	if f != nil && f.mf != nil {
		_ = f.mf.RemoveAll()
	}
}

func (f *Form) Lookup(key string) (string, bool) {
	vs, ok := f.mf.Value[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (f *Form) Value(key string) string {
	v, _ := f.Lookup(key)
	return v
}

func (f *Form) String(key string) *string {
	v, ok := f.Lookup(key)
	if !ok {
		return nil
	}
	return &v
}

// Int parsea un campo numérico. nil si no vino.
func (f *Form) Int(key string) (*int, error) {
	v, ok := f.Lookup(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &n, nil
}

// Bool sigue la regla del form: true solo si el valor es exactamente "true".
func (f *Form) Bool(key string) *bool {
	v, ok := f.Lookup(key)
	if !ok {
		return nil
	}
	b := v == "true"
	return &b
}

// File abre la parte binaria key. nil (sin error) si no vino archivo.
// El caller siempre debe invocar la func de cierre devuelta.
func (f *Form) File(key string) (*media.Upload, func(), error) {
	fhs, ok := f.mf.File[key]
	if !ok || len(fhs) == 0 {
		return nil, func() {}, nil
	}
	fh := fhs[0]
	file, err := fh.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("open upload %s: %w", key, err)
	}
	up := &media.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        file,
	}
	return up, func() { _ = file.Close() }, nil
}

// IsTooLarge indica si el error vino de MaxBytesReader.
func IsTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
