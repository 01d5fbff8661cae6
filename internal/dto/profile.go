package dto

import (
	"time"

	dom "Taskboard/internal/domain"
)

type UpdateProfileRequest struct {
	Name string `json:"name"`
	// absent keeps the avatar, "" removes it
	AvatarURL *string `json:"avatar_url"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ProfileFromDomain(p dom.Profile) ProfileResponse {
	return ProfileResponse{ID: p.ID, Name: p.Name, AvatarURL: p.AvatarURL, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

type AvatarResponse struct {
	URL string `json:"url"`
}

type DeleteAvatarRequest struct {
	URL string `json:"url" binding:"required"`
}

type SuggestRequest struct {
	Goal string `json:"goal"`
}
