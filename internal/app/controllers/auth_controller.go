package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/app/services"
	"github.com/emrah/lessonhub/internal/middleware"
	"github.com/emrah/lessonhub/internal/pkg/auth"
	"github.com/emrah/lessonhub/internal/pkg/session"
)

// AuthController handles login, logout and session checks
type AuthController struct {
	authService services.AuthService
	sessions    session.Store
	codec       *auth.SessionTokenCodec
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions session.Store, codec *auth.SessionTokenCodec, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		codec:       codec,
		logger:      logger,
	}
}

// resolveSession returns the live session for the request cookie, if any
func (c *AuthController) resolveSession(ctx *gin.Context) (*session.Session, bool) {
	cookie, err := ctx.Cookie(auth.SessionCookieName)
	if err != nil {
		return nil, false
	}

	sessionID, err := c.codec.Decode(cookie)
	if err != nil {
		return nil, false
	}

	return c.sessions.Get(sessionID)
}

// Login verifies credentials and establishes a server-side session.
// The response never reveals whether the username or the password was wrong.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
		return
	}

	user, err := c.authService.Authenticate(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sess, err := c.sessions.Create(user.ID, user.Username, string(user.Role))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, err := c.codec.Encode(sess.ID, sess.ExpiresAt)
	if err != nil {
		c.sessions.Delete(sess.ID)
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	ctx.SetCookie(auth.SessionCookieName, token, maxAge, "/", "", false, true)

	c.logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("User logged in")

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Role:    string(user.Role),
	})
}

// CheckAuth reports whether a session is active, without side effects
func (c *AuthController) CheckAuth(ctx *gin.Context) {
	sess, ok := c.resolveSession(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.AuthStatusResponse{Authenticated: false})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthStatusResponse{
		Authenticated: true,
		Role:          sess.Role,
		Username:      sess.Username,
	})
}

// Logout clears the session unconditionally. Ending an absent session
// is not an error.
func (c *AuthController) Logout(ctx *gin.Context) {
	if cookie, err := ctx.Cookie(auth.SessionCookieName); err == nil {
		if sessionID, err := c.codec.Decode(cookie); err == nil {
			c.sessions.Delete(sessionID)
		}
	}

	ctx.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}
