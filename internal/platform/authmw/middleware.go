// Package authmw provides session-cookie authentication middleware for Gin.
package authmw

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"registry_backend/internal/feature/auth/domain/entity"
)

const (
	// SessionCookie is the name of the cookie carrying the session id.
	SessionCookie = "registry_session"

	// ContextUser is the Gin context key the authenticated user is stored under.
	ContextUser = "currentUser"
)

// SessionResolver maps a session cookie value to its user.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*entity.User, error)
}

// AuthRequired restricts access to requests carrying a resolvable session
// cookie. A missing cookie and an unknown, expired, or revoked session all
// count as anonymous and get 401.
func AuthRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// StaffOnly restricts access to staff users. It must run after
// AuthRequired; a request that never went through it is rejected.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		switch user.Role() {
		case entity.RoleStaff:
			c.Next()
		case entity.RoleViewer:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff access required"})
		}
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
