package storage

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxAvatarSize is the largest accepted avatar upload.
const MaxAvatarSize = 5 << 20

var (
	ErrTooLarge        = errors.New("file size must be less than 5MB")
	ErrUnsupportedType = errors.New("file must be a JPEG, PNG or WebP image")
	ErrEmptyFile       = errors.New("file is empty")
)

// avatarTypes maps accepted MIME types to the key extension.
var avatarTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ValidateAvatar checks the upload size, the declared content type and the
// type sniffed from head, the first bytes of the file. It returns the
// detected MIME type and the extension used for the object key.
func ValidateAvatar(size int64, declared string, head []byte) (mime, ext string, err error) {
	if size > MaxAvatarSize {
		return "", "", ErrTooLarge
	}
	if size == 0 || len(head) == 0 {
		return "", "", ErrEmptyFile
	}
	if declared != "" && !declaredAllowed(declared) {
		return "", "", ErrUnsupportedType
	}
	mtype := mimetype.Detect(head)
	for t := mtype; t != nil; t = t.Parent() {
		if ext, ok := avatarTypes[t.String()]; ok {
			return t.String(), ext, nil
		}
	}
	return "", "", fmt.Errorf("%w: detected %s", ErrUnsupportedType, mtype.String())
}

func declaredAllowed(declared string) bool {
	declared = strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
	if declared == "image/jpg" {
		return true
	}
	_, ok := avatarTypes[declared]
	return ok
}

// AvatarKey names the object of a user's avatar: <userID>-<unixMillis>.<ext>.
func AvatarKey(userID string, now time.Time, ext string) string {
	return fmt.Sprintf("%s-%d.%s", userID, now.UnixMilli(), ext)
}

// KeyFromURL returns the last path segment of a public object URL.
func KeyFromURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	key := path.Base(u.Path)
	if key == "" || key == "." || key == "/" {
		return "", fmt.Errorf("no object key in %q", raw)
	}
	return key, nil
}

// OwnsKey reports whether key was issued to userID by AvatarKey.
func OwnsKey(userID, key string) bool {
	return userID != "" && strings.HasPrefix(key, userID+"-")
}
