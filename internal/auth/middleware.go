package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"Taskboard/internal/identity"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session_id"

const (
	contextKeyUserID      = "user_id"
	contextKeyAccessToken = "access_token"
	contextKeySessionID   = "session_id"
)

// UserIDFromContext returns the current user ID set by RequireAuth. "" if not set.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(contextKeyUserID)
}

// AccessTokenFromContext returns the provider token of the current request.
func AccessTokenFromContext(c *gin.Context) string {
	return c.GetString(contextKeyAccessToken)
}

// SessionIDFromContext returns the session cookie value when the request
// was authenticated by cookie.
func SessionIDFromContext(c *gin.Context) string {
	return c.GetString(contextKeySessionID)
}

// SetSessionCookie writes the httpOnly session cookie.
func SetSessionCookie(c *gin.Context, id string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, id, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

// RequireAuth returns a middleware that accepts a valid session cookie or an
// "Authorization: Bearer <jwt>" header signed with secret, and sets the
// current user ID in context. Otherwise it responds with 401.
// Password recovery tokens are refused.
func RequireAuth(sessions *Store, secret []byte, log *slog.Logger) gin.HandlerFunc {
	return requireAuth(sessions, secret, log, false)
}

// RequireAuthOrRecovery is RequireAuth that also accepts recovery tokens.
// It guards the password update.
func RequireAuthOrRecovery(sessions *Store, secret []byte, log *slog.Logger) gin.HandlerFunc {
	return requireAuth(sessions, secret, log, true)
}

func requireAuth(sessions *Store, secret []byte, log *slog.Logger, allowRecovery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			claims, err := identity.ParseToken(secret, token)
			if err == nil && claims.Purpose == identity.PurposeRecovery && !allowRecovery {
				err = identity.ErrInvalidToken
			}
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			c.Set(contextKeyUserID, claims.Subject)
			c.Set(contextKeyAccessToken, token)
			c.Next()
			return
		}

		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		sess, ok, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			log.Error("load session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyUserID, sess.UserID)
		c.Set(contextKeyAccessToken, sess.AccessToken)
		c.Set(contextKeySessionID, sessionID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
