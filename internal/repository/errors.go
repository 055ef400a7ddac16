package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the lookup or mutation.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("record already exists")
	// ErrReferenceMissing is returned when a write points at a row that does not exist.
	ErrReferenceMissing = errors.New("referenced record does not exist")
	// ErrReferenced is returned when a delete would leave other rows dangling.
	ErrReferenced = errors.New("record is still referenced")
)
