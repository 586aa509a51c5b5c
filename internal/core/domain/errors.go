package domain

import (
	"errors"
	"sort"
	"strings"
)

var ErrDuplicateEmail = errors.New("email already registered")
var ErrUserNotFound = errors.New("no account found with this email")
var ErrInvalidPassword = errors.New("invalid password")
var ErrCatalogUnavailable = errors.New("failed to fetch movies")
var ErrKeyNotFound = errors.New("key not found")

// FieldErrors maps a form field to a single human-readable message.
// A submission is rejected while the map is non-empty.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(e))
	for _, f := range fields {
		msgs = append(msgs, f+": "+e[f])
	}
	return strings.Join(msgs, "; ")
}
