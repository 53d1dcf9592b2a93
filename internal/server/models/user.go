// Package models defines plain data records persisted by the server.
// Records carry no behavior; relationships are loaded with explicit queries.
package models

import "time"

// User is a credential identity. Email is unique across all users and the
// password is stored only as a bcrypt hash.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
}
