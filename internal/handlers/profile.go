package handlers

import (
	"errors"
	"net/http"

	"Taskboard/internal/auth"
	"Taskboard/internal/dto"
	"Taskboard/internal/service"
	"Taskboard/internal/storage"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get godoc
// @Summary      Current profile
// @Description  data is null until the profile is created.
// @Tags         profile
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.DataResponse{data=dto.ProfileResponse}
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		respondError(c, err, "failed to fetch profile")
		return
	}
	if p == nil {
		respondData(c, http.StatusOK, nil)
		return
	}
	respondData(c, http.StatusOK, dto.ProfileFromDomain(*p))
}

// Update godoc
// @Summary      Create or update the profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.UpdateProfileRequest  true  "Profile"
// @Success      200   {object}  dto.DataResponse{data=dto.ProfileResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), req.Name, req.AvatarURL)
	if err != nil {
		respondError(c, err, "failed to update profile")
		return
	}
	respondData(c, http.StatusOK, dto.ProfileFromDomain(p))
}

// UploadAvatar godoc
// @Summary      Upload an avatar
// @Description  JPEG, PNG or WebP up to 5MB. The profile is not changed.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     CookieAuth
// @Param        file  formData  file  true  "Image"
// @Success      200   {object}  dto.DataResponse{data=dto.AvatarResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	const limit = storage.MaxAvatarSize + 1<<20
	if c.Request.ContentLength > limit {
		c.JSON(http.StatusBadRequest, gin.H{"error": storage.ErrTooLarge.Error()})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": storage.ErrTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size > storage.MaxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": storage.ErrTooLarge.Error()})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer f.Close()

	url, err := h.svc.UploadAvatar(c.Request.Context(), auth.UserIDFromContext(c), f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err, "failed to upload avatar")
		return
	}
	respondData(c, http.StatusOK, dto.AvatarResponse{URL: url})
}

// DeleteAvatar godoc
// @Summary      Delete an uploaded avatar
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.DeleteAvatarRequest  true  "Avatar URL"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /profile/avatar [delete]
func (h *ProfileHandler) DeleteAvatar(c *gin.Context) {
	var req dto.DeleteAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.DeleteAvatar(c.Request.Context(), auth.UserIDFromContext(c), req.URL); err != nil {
		respondError(c, err, "failed to delete avatar")
		return
	}
	respondSuccess(c)
}
