package lib

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tienda_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func testAdmin() *structs.AdminIdentity {
	return &structs.AdminIdentity{
		Id:       uuid.New(),
		Username: "admin",
	}
}

func TestAdminTokenRoundTrip(t *testing.T) {
	admin := testAdmin()

	token, err := GenerateAdminToken(admin, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, admin.Id, claims.Sub)
	assert.Equal(t, admin.Username, claims.Username)
	assert.NotEqual(t, uuid.Nil, claims.Jti)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Exp, 5*time.Second)
}

func TestParseAdminTokenExpired(t *testing.T) {
	token, err := GenerateAdminToken(testAdmin(), testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAdminTokenWrongSecret(t *testing.T) {
	token, err := GenerateAdminToken(testAdmin(), testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAdminTokenGarbage(t *testing.T) {
	_, err := ParseAdminToken("not.a.jwt", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractAdminTokenFromCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/admin/verify", nil)
	r.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "cookie-token"})

	token, err := ExtractAdminToken(r)
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestExtractAdminTokenFromBearerHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/admin/verify", nil)
	r.Header.Set("Authorization", "Bearer header-token")

	token, err := ExtractAdminToken(r)
	require.NoError(t, err)
	assert.Equal(t, "header-token", token)
}

func TestExtractAdminTokenCookieWinsOverHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/admin/verify", nil)
	r.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "cookie-token"})
	r.Header.Set("Authorization", "Bearer header-token")

	token, err := ExtractAdminToken(r)
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestExtractAdminTokenMissing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/admin/verify", nil)

	_, err := ExtractAdminToken(r)
	assert.ErrorIs(t, err, ErrMissingToken)
}
