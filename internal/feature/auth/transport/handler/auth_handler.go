// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"registry_backend/internal/api"
	"registry_backend/internal/feature/auth/domain"
	"registry_backend/internal/feature/auth/domain/entity"
	"registry_backend/internal/feature/auth/transport/http/dto"
	"registry_backend/internal/feature/auth/usecase"
	"registry_backend/internal/platform/authmw"
)

// AuthUsecase defines the auth operations the handler depends on.
type AuthUsecase interface {
	// Register creates a new account and signs it in.
	Register(ctx context.Context, username, password, fullName string, isStaff bool, meta usecase.SessionMeta) (*entity.User, *entity.Session, error)
	// Login authenticates a user and starts a session.
	Login(ctx context.Context, username, password string, meta usecase.SessionMeta) (*entity.User, *entity.Session, error)
	// Logout revokes a session; unknown sessions are not an error.
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler handles registration, login, logout, and the current-user
// endpoint. Sessions travel in an HttpOnly cookie.
type AuthHandler struct {
	auth       AuthUsecase
	sessionTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler. The TTL controls the cookie
// max-age and must match the usecase's session TTL.
func NewAuthHandler(auth AuthUsecase, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &AuthHandler{auth: auth, sessionTTL: sessionTTL}
}

// Register handles POST /api/register.
// - 400 with a field map on validation failure
// - 409 when the username is taken
// - 201 with the new user and a session cookie on success (auto-login)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Message: "Invalid registration data",
			Details: api.ValidationDetails(err),
		})
		return
	}

	user, session, err := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.FullName, req.IsStaff, h.sessionMeta(c))
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			slog.Warn("register rejected: username taken", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "username already exists"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		return
	}

	h.setSessionCookie(c, session.ID)
	slog.Info("user registered", "username", user.Username, "staff", user.IsStaff, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles POST /api/login. The 401 body is identical for an unknown
// username and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Message: "Invalid login data",
			Details: api.ValidationDetails(err),
		})
		return
	}

	user, session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password, h.sessionMeta(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid username or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	h.setSessionCookie(c, session.ID)
	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Logout handles POST /api/logout. It is idempotent: a missing or dead
// session cookie still yields 200 and a cleared cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(authmw.SessionCookie); err == nil {
		if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
			slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
			return
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// CurrentUser handles GET /api/user, returning the user established by the
// auth middleware.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *AuthHandler) sessionMeta(c *gin.Context) usecase.SessionMeta {
	return usecase.SessionMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, id string) {
	c.SetCookie(authmw.SessionCookie, id, int(h.sessionTTL.Seconds()), "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(authmw.SessionCookie, "", -1, "/", "", false, true)
}
