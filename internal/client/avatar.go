package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"

	"Taskboard/internal/dto"
	"Taskboard/internal/storage"
)

const sniffLen = 3072

// UploadAvatar validates the image locally and uploads it. Oversized or
// unsupported files fail before any request is made.
func (c *Client) UploadAvatar(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	if size > storage.MaxAvatarSize {
		return "", storage.ErrTooLarge
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read avatar: %w", err)
	}
	head = head[:n]
	mimeType, _, err := storage.ValidateAvatar(size, mime.TypeByExtension(filepath.Ext(filename)), head)
	if err != nil {
		return "", err
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
		h.Set("Content-Type", mimeType)
		part, err := mw.CreatePart(h)
		if err == nil {
			_, err = io.Copy(part, io.MultiReader(bytes.NewReader(head), r))
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/profile/avatar", pr)
	if err != nil {
		_ = pr.Close()
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	var out dto.AvatarResponse
	if err := c.send(req, &out); err != nil {
		_ = pr.CloseWithError(err)
		return "", err
	}
	return out.URL, nil
}

// DeleteAvatar removes an uploaded avatar by its public URL.
func (c *Client) DeleteAvatar(ctx context.Context, url string) error {
	return c.do(ctx, http.MethodDelete, "/profile/avatar", dto.DeleteAvatarRequest{URL: url}, nil)
}
