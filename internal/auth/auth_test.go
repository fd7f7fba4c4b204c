package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "hospogo-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService("test-secret-key", time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService("", time.Hour)
	assert.Error(t, err)
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestService(t)
	subjectID := uuid.New()

	token, expiresAt, err := svc.IssueToken(subjectID, "jo@example.com", RoleHubOwner)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, RoleHubOwner, claims.Role)
	assert.Equal(t, "hospogo-backend", claims.Issuer)
}

func TestIssueTokenUnknownRole(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.IssueToken(uuid.New(), "jo@example.com", "janitor")
	assert.ErrorIs(t, err, apperrors.ErrRoleForbidden)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateJWT("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	svc, err := NewAuthService("test-secret-key", time.Nanosecond)
	require.NoError(t, err)
	// NewAuthService floors non-positive TTLs, so build a barely-live token
	// and wait it out.
	token, _, err := svc.IssueToken(uuid.New(), "jo@example.com", RoleProfessional)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateJWT(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	svc := newTestService(t)
	other, err := NewAuthService("different-secret", time.Hour)
	require.NoError(t, err)

	token, _, err := svc.IssueToken(uuid.New(), "jo@example.com", RoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateJWT(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func setupMiddlewareRouter(svc *AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := NewAuthMiddleware(svc)
	handlers := append([]gin.HandlerFunc{mw.RequireAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestRequireAuth(t *testing.T) {
	svc := newTestService(t)
	router := setupMiddlewareRouter(svc)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "Missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Not a bearer token", header: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer junk", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}

	t.Run("Valid token", func(t *testing.T) {
		token, _, err := svc.IssueToken(uuid.New(), "jo@example.com", RoleProfessional)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), RoleProfessional)
	})
}

func TestRequireRole(t *testing.T) {
	svc := newTestService(t)
	mw := NewAuthMiddleware(svc)
	router := setupMiddlewareRouter(svc, mw.RequireRole(RoleHubOwner))

	issue := func(role string) string {
		token, _, err := svc.IssueToken(uuid.New(), "jo@example.com", role)
		require.NoError(t, err)
		return token
	}

	testCases := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "Allowed role", role: RoleHubOwner, wantStatus: http.StatusOK},
		{name: "Admin always passes", role: RoleAdmin, wantStatus: http.StatusOK},
		{name: "Forbidden role", role: RoleProfessional, wantStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+issue(tc.role))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
