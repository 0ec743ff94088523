package models

import "time"

// User is the stored credential record. Email is kept in normalized form
// (lowercased, trimmed). PasswordHash is a bcrypt hash and must never leave
// the service layer.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
