package auth

import "time"

// User represents a registered account, including the stored credential
// hash. The hash never leaves the auth and persistence layers.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	About        string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
