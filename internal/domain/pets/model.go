package pets

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Pet es una mascota publicada para adopción.
// Traits se guarda como un único string separado por comas (orden significativo).
type Pet struct {
	ID          int64
	Name        string
	Type        string // especie: dog, cat, ...
	Breed       string
	Sex         string
	Age         int
	Location    string
	Description string
	Image       string // path público (/images/...) o URL externa; "" si no hay
	Traits      string
	PrimaryCol  string
	AccentCol   string
	IsLiked     bool
	CreatedAt   time.Time
}

// Traits acepta en el wire un string ("a,b") o un array (["a","b"]) y lo normaliza a "a,b".
type Traits string

func (t *Traits) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Traits(s)
		return nil
	case len(b) > 0 && b[0] == '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return errors.New("traits must be a string or an array of strings")
		}
		*t = Traits(strings.Join(items, ","))
		return nil
	default:
		return errors.New("traits must be a string or an array of strings")
	}
}
