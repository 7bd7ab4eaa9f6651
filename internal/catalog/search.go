package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Field extrae un campo de texto buscable.
type Field func(Pet) string

var (
	FieldName     Field = func(p Pet) string { return p.Name }
	FieldType     Field = func(p Pet) string { return p.Type }
	FieldBreed    Field = func(p Pet) string { return p.Breed }
	FieldLocation Field = func(p Pet) string { return p.Location }
)

// DefaultSearchFields: raza, especie y ubicación.
var DefaultSearchFields = []Field{FieldBreed, FieldType, FieldLocation}

var fieldsByName = map[string]Field{
	"name":     FieldName,
	"type":     FieldType,
	"breed":    FieldBreed,
	"location": FieldLocation,
}

// ParseFields resuelve nombres de campo (name, type, breed, location). Sin nombres: los default.
func ParseFields(names []string) ([]Field, error) {
	if len(names) == 0 {
		return DefaultSearchFields, nil
	}
	out := make([]Field, 0, len(names))
	for _, n := range names {
		f, ok := fieldsByName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return nil, fmt.Errorf("unknown search field %q", n)
		}
		out = append(out, f)
	}
	return out, nil
}

// Filter hace match por substring sin distinguir mayúsculas (case folding Unicode).
// Query vacía devuelve todo.
func Filter(pets []Pet, query string, fields ...Field) []Pet {
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}

	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return pets
	}

	out := make([]Pet, 0, len(pets))
	for _, p := range pets {
		for _, f := range fields {
			if strings.Contains(fold.String(f(p)), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
