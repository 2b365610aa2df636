package authmw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"registry_backend/internal/feature/auth/domain/entity"
	"registry_backend/internal/feature/auth/usecase"
)

// mockResolver is a func-field mock of the SessionResolver interface.
type mockResolver struct {
	ResolveFunc func(ctx context.Context, sessionID string) (*entity.User, error)
}

func (m *mockResolver) Resolve(ctx context.Context, sessionID string) (*entity.User, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, sessionID)
	}
	return nil, usecase.ErrSessionNotFound
}

func newTestRouter(resolver SessionResolver, staffOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/", AuthRequired(resolver))
	if staffOnly {
		group.Use(StaffOnly())
	}
	group.GET("/protected", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r
}

func request(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	viewer := &entity.User{ID: 1, Username: "viewer"}

	t.Run("valid session passes and stores the user", func(t *testing.T) {
		resolver := &mockResolver{
			ResolveFunc: func(ctx context.Context, sessionID string) (*entity.User, error) {
				assert.Equal(t, "sess-123", sessionID)
				return viewer, nil
			},
		}

		w := request(newTestRouter(resolver, false), "sess-123")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"viewer"}`, w.Body.String())
	})

	t.Run("missing cookie returns 401", func(t *testing.T) {
		w := request(newTestRouter(&mockResolver{}, false), "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"authentication required"}`, w.Body.String())
	})

	t.Run("dead session returns 401", func(t *testing.T) {
		w := request(newTestRouter(&mockResolver{}, false), "expired-or-revoked")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestStaffOnly(t *testing.T) {
	t.Run("staff user passes", func(t *testing.T) {
		resolver := &mockResolver{
			ResolveFunc: func(ctx context.Context, sessionID string) (*entity.User, error) {
				return &entity.User{ID: 1, Username: "staffer", IsStaff: true}, nil
			},
		}

		w := request(newTestRouter(resolver, true), "sess-123")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("viewer gets 403, not 401", func(t *testing.T) {
		resolver := &mockResolver{
			ResolveFunc: func(ctx context.Context, sessionID string) (*entity.User, error) {
				return &entity.User{ID: 2, Username: "viewer", IsStaff: false}, nil
			},
		}

		w := request(newTestRouter(resolver, true), "sess-123")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"staff access required"}`, w.Body.String())
	})

	t.Run("without AuthRequired in front it rejects with 401", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/misWired", StaffOnly(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/misWired", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns false when nothing is stored", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := CurrentUser(c)

		assert.False(t, ok)
	})

	t.Run("returns false for a wrongly typed value", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ContextUser, "not a user")

		_, ok := CurrentUser(c)

		assert.False(t, ok)
	})
}
