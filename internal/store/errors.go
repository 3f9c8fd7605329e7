package store

import (
	"errors"
	"strings"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("Email is already taken by another user")
)

// ValidationErrors collects every field-level failure message so the caller
// can show them all, not just the first.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}
