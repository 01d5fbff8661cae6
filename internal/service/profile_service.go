package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	dom "Taskboard/internal/domain"
	"Taskboard/internal/repo"
	"Taskboard/internal/storage"
)

// sniffLen is how much of an upload is read for type detection.
const sniffLen = 3072

// ProfileService manages profiles and avatar objects.
type ProfileService struct {
	repo    repo.ProfileRepo
	objects storage.ObjectStore
	log     *slog.Logger
	now     func() time.Time
}

func NewProfileService(r repo.ProfileRepo, objects storage.ObjectStore, log *slog.Logger) *ProfileService {
	return &ProfileService{repo: r, objects: objects, log: log, now: time.Now}
}

// Get returns the profile, or nil when the user has none yet.
func (s *ProfileService) Get(ctx context.Context, userID string) (*dom.Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, internal("failed to fetch profile", err)
	}
	return &p, nil
}

// Update creates or updates the profile. A nil avatarURL keeps the current
// avatar; an empty one removes it.
func (s *ProfileService) Update(ctx context.Context, userID, name string, avatarURL *string) (dom.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Profile{}, invalid("name is required")
	}
	if avatarURL != nil {
		u := strings.TrimSpace(*avatarURL)
		avatarURL = &u
	}
	p, err := s.repo.Upsert(ctx, userID, name, avatarURL)
	if err != nil {
		return dom.Profile{}, internal("failed to update profile", err)
	}
	return p, nil
}

// UploadAvatar validates and stores an avatar and returns its public URL.
// The profile itself is not changed.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID string, r io.Reader, size int64, declared string) (string, error) {
	if s.objects == nil {
		return "", unavailable("avatar storage is not configured", nil)
	}
	if size > storage.MaxAvatarSize {
		return "", invalid(storage.ErrTooLarge.Error())
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", invalid("failed to read file")
	}
	head = head[:n]
	mime, ext, err := storage.ValidateAvatar(size, declared, head)
	if err != nil {
		return "", avatarError(err)
	}

	key := storage.AvatarKey(userID, s.now(), ext)
	body := io.MultiReader(bytes.NewReader(head), r)
	if err := s.objects.Put(ctx, key, body, size, mime); err != nil {
		s.log.Error("upload avatar", "user_id", userID, "key", key, "error", err)
		return "", unavailable("failed to upload avatar", err)
	}
	return s.objects.URL(key), nil
}

// DeleteAvatar removes the object behind url. Only the caller's own avatars
// can be removed.
func (s *ProfileService) DeleteAvatar(ctx context.Context, userID, url string) error {
	if s.objects == nil {
		return unavailable("avatar storage is not configured", nil)
	}
	key, err := storage.KeyFromURL(url)
	if err != nil {
		return invalid("invalid avatar url")
	}
	if !storage.OwnsKey(userID, key) {
		return notFound("avatar not found")
	}
	if err := s.objects.Remove(ctx, key); err != nil {
		s.log.Error("delete avatar", "user_id", userID, "key", key, "error", err)
		return unavailable("failed to delete avatar", err)
	}
	return nil
}

func avatarError(err error) error {
	switch {
	case errors.Is(err, storage.ErrTooLarge):
		return invalid(storage.ErrTooLarge.Error())
	case errors.Is(err, storage.ErrEmptyFile):
		return invalid(storage.ErrEmptyFile.Error())
	}
	return invalid(storage.ErrUnsupportedType.Error())
}
