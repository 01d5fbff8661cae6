package domain

import "time"

// User is an account of the local identity provider.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
