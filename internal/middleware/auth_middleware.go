package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/pkg/auth"
	"github.com/emrah/lessonhub/internal/pkg/session"
)

// Context keys set by SessionAuth for downstream handlers
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware resolves the session cookie and enforces role requirements
type AuthMiddleware struct {
	codec    *auth.SessionTokenCodec
	sessions session.Store
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(codec *auth.SessionTokenCodec, sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		codec:    codec,
		sessions: sessions,
	}
}

// Resolve returns the live session for the request's cookie, if any.
// It has no side effects on the session store.
func (m *AuthMiddleware) Resolve(c *gin.Context) (*session.Session, bool) {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil {
		return nil, false
	}

	sessionID, err := m.codec.Decode(cookie)
	if err != nil {
		return nil, false
	}

	return m.sessions.Get(sessionID)
}

// SessionAuth requires a live session and places its identity on the context.
// Handlers behind it never see an unauthenticated request.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := m.Resolve(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
			return
		}

		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextUsername, sess.Username)
		c.Set(ContextRole, sess.Role)

		c.Next()
	}
}

// RoleRequired allows the request through only when the session role equals
// requiredRole. It must run after SessionAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}

		c.Next()
	}
}

// SessionUserID returns the authenticated user id set by SessionAuth.
func SessionUserID(c *gin.Context) int64 {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
