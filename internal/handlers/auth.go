package handlers

import (
	"net/http"
	"time"

	"Taskboard/internal/auth"
	"Taskboard/internal/dto"
	"Taskboard/internal/identity"
	"Taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login, logout and password recovery.
type AuthHandler struct {
	svc          *service.AuthService
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthHandler returns a new AuthHandler. sessionTTL is the cookie lifetime.
func NewAuthHandler(svc *service.AuthService, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

func userResponse(u identity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Account"
// @Success      201   {object}  dto.DataResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.svc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err, "registration failed")
		return
	}
	respondData(c, http.StatusCreated, userResponse(u))
}

// Login godoc
// @Summary      Login
// @Description  Sets the session cookie and returns the access token for bearer use.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.DataResponse{data=dto.LoginResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	l, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "login failed")
		return
	}
	auth.SetSessionCookie(c, l.SessionID, h.sessionTTL, h.secureCookie)
	respondData(c, http.StatusOK, dto.LoginResponse{
		User:        userResponse(l.User),
		AccessToken: l.AccessToken,
		ExpiresAt:   l.ExpiresAt,
	})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.SuccessResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.svc.Logout(c.Request.Context(), auth.SessionIDFromContext(c), auth.AccessTokenFromContext(c))
	auth.ClearSessionCookie(c, h.secureCookie)
	if err != nil {
		respondError(c, err, "logout failed")
		return
	}
	respondSuccess(c)
}

// Session godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.DataResponse{data=dto.UserResponse}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	u, err := h.svc.Session(c.Request.Context(), auth.AccessTokenFromContext(c))
	if err != nil {
		respondError(c, err, "failed to fetch session")
		return
	}
	respondData(c, http.StatusOK, userResponse(u))
}

// ResetPassword godoc
// @Summary      Send a password recovery email
// @Description  Succeeds for unknown emails too.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PasswordResetRequest  true  "Email"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /auth/password/reset [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "password reset failed")
		return
	}
	respondSuccess(c)
}

// UpdatePassword godoc
// @Summary      Set a new password
// @Description  Accepts a session, an access token or a recovery token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.PasswordUpdateRequest  true  "New password"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/password/update [post]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.PasswordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	err := h.svc.UpdatePassword(c.Request.Context(), auth.AccessTokenFromContext(c), req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(c, err, "failed to update password")
		return
	}
	respondSuccess(c)
}
