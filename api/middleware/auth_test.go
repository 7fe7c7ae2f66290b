package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tienda_server/lib"
	"tienda_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func testMiddleware() *Middleware {
	cfg := &structs.Config{
		Auth: &structs.AuthConfig{
			TokenSecret: testSecret,
			TokenExpiry: time.Hour,
		},
	}
	return NewMiddleware(cfg, gecho.NewDefaultLogger(), nil)
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		assert.True(t, ok)
		assert.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuthMiddlewareMissingToken(t *testing.T) {
	mw := testMiddleware()

	r := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	w := httptest.NewRecorder()

	mw.AdminAuthMiddleware(protectedHandler(t)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddlewareInvalidToken(t *testing.T) {
	mw := testMiddleware()

	r := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	r.AddCookie(&http.Cookie{Name: lib.AdminCookieName, Value: "garbage"})
	w := httptest.NewRecorder()

	mw.AdminAuthMiddleware(protectedHandler(t)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminAuthMiddlewareExpiredToken(t *testing.T) {
	mw := testMiddleware()

	admin := &structs.AdminIdentity{Id: uuid.New(), Username: "admin"}
	token, err := lib.GenerateAdminToken(admin, testSecret, -time.Minute)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	r.AddCookie(&http.Cookie{Name: lib.AdminCookieName, Value: token})
	w := httptest.NewRecorder()

	mw.AdminAuthMiddleware(protectedHandler(t)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminAuthMiddlewareValidCookieToken(t *testing.T) {
	mw := testMiddleware()

	admin := &structs.AdminIdentity{Id: uuid.New(), Username: "admin"}
	token, err := lib.GenerateAdminToken(admin, testSecret, time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	r.AddCookie(&http.Cookie{Name: lib.AdminCookieName, Value: token})
	w := httptest.NewRecorder()

	mw.AdminAuthMiddleware(protectedHandler(t)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthMiddlewareValidBearerToken(t *testing.T) {
	mw := testMiddleware()

	admin := &structs.AdminIdentity{Id: uuid.New(), Username: "admin"}
	token, err := lib.GenerateAdminToken(admin, testSecret, time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	mw.AdminAuthMiddleware(protectedHandler(t)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
