package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound signals that no booking or office matched the lookup.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyPaid signals an approve call on a booking that is paid.
	ErrAlreadyPaid = errors.New("booking is already paid")
)

// FieldErrors carries validation failures keyed by request field name.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var fe FieldErrors
	return errors.As(err, &fe)
}
