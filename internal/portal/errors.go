package portal

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields = errors.New("required fields missing")
	ErrUnknownView   = errors.New("unknown view")
)

// MissingFieldsError names the empty fields of a rejected form.
type MissingFieldsError struct {
	Form   string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return e.Form + ": required fields missing: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error { return ErrMissingFields }
