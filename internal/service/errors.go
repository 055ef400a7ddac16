package service

import "errors"

var (
	// ErrInvalidID indicates an identifier that is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrUserAlreadyExists is returned when attempting to register with an existing email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the login email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates that the provided password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	// ErrCategoryMissing is returned when a product points at a category that does not exist.
	ErrCategoryMissing = errors.New("category does not exist")
	// ErrCategoryInUse is returned when deleting a category that products still reference.
	ErrCategoryInUse = errors.New("category is in use by products")

	ErrProductNotFound = errors.New("product not found")
)

// ValidationError describes the first input field that failed validation.
// Message is safe to return to clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func checkID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}
