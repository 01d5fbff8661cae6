package storage

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

var (
	pngHead  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	jpegHead = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}
	gifHead  = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00")
)

func TestValidateAvatar(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		declared string
		head     []byte
		wantExt  string
		wantErr  error
	}{
		{name: "png", size: 1024, declared: "image/png", head: pngHead, wantExt: "png"},
		{name: "jpeg declared as jpg", size: 2048, declared: "image/jpg", head: jpegHead, wantExt: "jpg"},
		{name: "no declared type", size: 2048, head: jpegHead, wantExt: "jpg"},
		{name: "six megabytes", size: 6 << 20, declared: "image/png", head: pngHead, wantErr: ErrTooLarge},
		{name: "gif", size: 1024, declared: "image/gif", head: gifHead, wantErr: ErrUnsupportedType},
		{name: "gif declared as png", size: 1024, declared: "image/png", head: gifHead, wantErr: ErrUnsupportedType},
		{name: "text", size: 5, declared: "image/png", head: []byte("hello"), wantErr: ErrUnsupportedType},
		{name: "empty", size: 0, declared: "image/png", head: nil, wantErr: ErrEmptyFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ext, err := ValidateAvatar(tt.size, tt.declared, tt.head)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ext != tt.wantExt {
				t.Errorf("ext = %q, want %q", ext, tt.wantExt)
			}
		})
	}
}

func TestValidateAvatarLimitIsInclusive(t *testing.T) {
	head := append(bytes.Clone(pngHead), make([]byte, 64)...)
	if _, _, err := ValidateAvatar(MaxAvatarSize, "image/png", head); err != nil {
		t.Errorf("exactly 5MB rejected: %v", err)
	}
}

func TestAvatarKeyOwnership(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	key := AvatarKey("user-1", now, "png")
	if key != "user-1-1700000000123.png" {
		t.Fatalf("AvatarKey = %q", key)
	}

	got, err := KeyFromURL("https://cdn.example.com/storage/v1/object/public/avatars/" + key)
	if err != nil {
		t.Fatalf("KeyFromURL failed: %v", err)
	}
	if got != key {
		t.Errorf("KeyFromURL = %q, want %q", got, key)
	}
	if !OwnsKey("user-1", got) {
		t.Error("owner does not own its key")
	}
	if OwnsKey("user-2", got) || OwnsKey("", got) {
		t.Error("other user owns the key")
	}
}
