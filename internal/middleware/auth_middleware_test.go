package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/pkg/apperrors"
	"github.com/devang/placeport/internal/pkg/auth"
)

type stubUserStore struct {
	users map[uuid.UUID]*models.User
}

func (s *stubUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	uc := *u
	return &uc, nil
}

func (s *stubUserStore) Create(context.Context, *models.User) error { return nil }
func (s *stubUserStore) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (s *stubUserStore) List(context.Context) ([]*models.User, error)     { return nil, nil }
func (s *stubUserStore) EmailExists(context.Context, string) (bool, error) { return false, nil }
func (s *stubUserStore) RollNoExists(context.Context, string) (bool, error) {
	return false, nil
}
func (s *stubUserStore) SetVerified(context.Context, uuid.UUID, bool) error       { return nil }
func (s *stubUserStore) SetRole(context.Context, uuid.UUID, models.Role) error    { return nil }
func (s *stubUserStore) UpdatePassword(context.Context, uuid.UUID, string) error  { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService, *stubUserStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	store := &stubUserStore{users: make(map[uuid.UUID]*models.User)}
	m := NewAuthMiddleware(jwtService, store)

	router := gin.New()
	protected := router.Group("", m.Authenticate())
	protected.GET("/me", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID.String()})
	})
	protected.GET("/staff", m.RequireRoles(models.RoleCoordinator, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtService, store
}

func seedStoreUser(store *stubUserStore, role models.Role, verified bool) *models.User {
	u := &models.User{
		ID:         uuid.New(),
		Email:      "someone@student.nitw.ac.in",
		RollNo:     "22MCF1R01",
		Role:       role,
		IsVerified: verified,
	}
	store.users[u.ID] = u
	return u
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body.Error.Code
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		w := doRequest(router, "/me", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		w := doRequest(router, "/me", "Bearer not.a.token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
		if code := errorCode(t, w); code != "AUTH_002" {
			t.Errorf("error code = %q, want AUTH_002", code)
		}
	})

	t.Run("expired token is reported distinctly", func(t *testing.T) {
		router, _, store := newTestRouter(t)
		user := seedStoreUser(store, models.RoleStudent, true)

		expiredSvc := auth.NewJWTService(auth.JWTConfig{
			SecretKey:   "test-secret",
			TokenExp:    -time.Minute,
			TokenIssuer: "test",
		})
		token, err := expiredSvc.Issue(user.ID.String(), string(user.Role))
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		w := doRequest(router, "/me", "Bearer "+token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
		if code := errorCode(t, w); code != "AUTH_003" {
			t.Errorf("error code = %q, want AUTH_003", code)
		}
	})

	t.Run("token for deleted account", func(t *testing.T) {
		router, jwtService, _ := newTestRouter(t)
		token, err := jwtService.Issue(uuid.New().String(), "student")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		w := doRequest(router, "/me", "Bearer "+token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("unverified account fails authentication", func(t *testing.T) {
		router, jwtService, store := newTestRouter(t)
		user := seedStoreUser(store, models.RoleStudent, false)
		token, err := jwtService.Issue(user.ID.String(), string(user.Role))
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		w := doRequest(router, "/me", "Bearer "+token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401 for valid token on unverified account", w.Code)
		}
		if code := errorCode(t, w); code != "AUTH_005" {
			t.Errorf("error code = %q, want AUTH_005", code)
		}
	})

	t.Run("verified account passes with context user", func(t *testing.T) {
		router, jwtService, store := newTestRouter(t)
		user := seedStoreUser(store, models.RoleStudent, true)
		token, err := jwtService.Issue(user.ID.String(), string(user.Role))
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		w := doRequest(router, "/me", "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var body struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.ID != user.ID.String() {
			t.Errorf("context user id = %q, want %q", body.ID, user.ID)
		}
	})
}

func TestRequireRoles(t *testing.T) {
	t.Run("student refused on staff route", func(t *testing.T) {
		router, jwtService, store := newTestRouter(t)
		user := seedStoreUser(store, models.RoleStudent, true)
		token, _ := jwtService.Issue(user.ID.String(), string(user.Role))

		w := doRequest(router, "/staff", "Bearer "+token)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("coordinator allowed", func(t *testing.T) {
		router, jwtService, store := newTestRouter(t)
		user := seedStoreUser(store, models.RoleCoordinator, true)
		token, _ := jwtService.Issue(user.ID.String(), string(user.Role))

		w := doRequest(router, "/staff", "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("role change takes effect on next request", func(t *testing.T) {
		// The token still claims student; the reload sees the promoted role.
		router, jwtService, store := newTestRouter(t)
		user := seedStoreUser(store, models.RoleStudent, true)
		token, _ := jwtService.Issue(user.ID.String(), string(models.RoleStudent))

		store.users[user.ID].Role = models.RoleCoordinator

		w := doRequest(router, "/staff", "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, promotion not visible", w.Code)
		}
	})
}
