package apperr

import "errors"

// ValidationError es un error de input del cliente. Msg se devuelve tal cual en el 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// AsValidation devuelve el mensaje público si err es (o envuelve) un ValidationError.
func AsValidation(err error) (string, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Msg, true
	}
	return "", false
}
