package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(secret)
	require.NoError(t, err)
	return s
}

func doRequest(authz string) (*httptest.ResponseRecorder, int) {
	mw := NewAuthMiddleware(testSecret)
	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value("userID").(int)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, req)
	return rec, gotUserID
}

func TestRequireAuthMissingToken(t *testing.T) {
	rec, _ := doRequest("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing token")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	rec, _ := doRequest("Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthInvalidSignature(t *testing.T) {
	tok := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"sub": 7,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, _ := doRequest("Bearer " + tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	tok := signToken(t, testSecret, jwt.MapClaims{
		"sub": 7,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	rec, _ := doRequest("Bearer " + tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	tok := signToken(t, testSecret, jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, userID := doRequest("Bearer " + tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, userID)
}

func TestRequireAuthMissingSubject(t *testing.T) {
	tok := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, _ := doRequest("Bearer " + tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid subject")
}
