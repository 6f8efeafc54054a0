package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-42", "student")
	require.NoError(t, err)

	var got AuthClaims
	handler := Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		got = claims
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", got.UserID)
	assert.Equal(t, "student", got.Role)
}

func TestProtectRejectsMissingCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	handler := Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	handler := Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	cases := []struct {
		name  string
		value string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", mustTokenWithSecret(t, "other-secret")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: c.value})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func mustTokenWithSecret(t *testing.T, secret string) string {
	t.Helper()
	t.Setenv("JWT_SECRET", secret)
	token, err := GenerateToken("user-42", "student")
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "test-secret")
	return token
}
