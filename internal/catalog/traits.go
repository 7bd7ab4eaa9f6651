package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SplitTraits parte por ',', recorta espacios y descarta vacíos. Mantiene orden y duplicados.
func SplitTraits(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TopTraits son los traits que entran en una card.
func TopTraits(s string, n int) []string {
	return Take(SplitTraits(s), n)
}

func JoinTraits(traits []string) string {
	return strings.Join(traits, ",")
}

var (
	ErrDescriptionTooLong = fmt.Errorf("description must be at most %d characters", MaxDescription)
	ErrTooManyTraits      = fmt.Errorf("at most %d traits are allowed", MaxTraits)
)

// CheckFormLimits aplica los límites del formulario de alta/edición.
func CheckFormLimits(description string, traits []string) error {
	var errs []error
	if utf8.RuneCountInString(description) > MaxDescription {
		errs = append(errs, ErrDescriptionTooLong)
	}
	if len(traits) > MaxTraits {
		errs = append(errs, ErrTooManyTraits)
	}
	return errors.Join(errs...)
}
