package domain

import "time"

// Profile is keyed by the identity provider's user ID.
type Profile struct {
	ID        string
	Name      string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
