package domain

import "time"

// User represents a registered account. PasswordHash is never serialized to clients.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
