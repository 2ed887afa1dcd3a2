package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campaign-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	m, err := NewSessionManager(testSecret, NewCredentialStore(models.DefaultCredentials()), false, nil)
	require.NoError(t, err)
	return m
}

// contextWithCookie создает gin.Context для запроса с cookie сессии.
func contextWithCookie(value string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: value})
	}
	c.Request = req
	return c, w
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("cookie %s not set", SessionCookieName)
	return nil
}

func TestNewSessionManager_Validation(t *testing.T) {
	store := NewCredentialStore(models.DefaultCredentials())

	_, err := NewSessionManager("", store, false, nil)
	assert.ErrorIs(t, err, models.ErrEmptySecret)

	_, err = NewSessionManager(testSecret, nil, false, nil)
	assert.Error(t, err)
}

func TestSessionManager_SetIdentityAndIdentity(t *testing.T) {
	m := newTestManager(t)

	c, w := contextWithCookie("")
	require.NoError(t, m.SetIdentity(c, "demo"))

	cookie := sessionCookieFrom(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.NotContains(t, cookie.Value, "password123")

	next, _ := contextWithCookie(cookie.Value)
	username, ok := m.Identity(next)
	assert.True(t, ok)
	assert.Equal(t, "demo", username)
	assert.True(t, m.IsAuthenticated(next))
}

func TestSessionManager_RejectsInvalidTokens(t *testing.T) {
	m := newTestManager(t)

	other, err := newTokenSigner("another-secret")
	require.NoError(t, err)
	foreignToken, err := other.Sign("demo")
	require.NoError(t, err)

	own, err := newTokenSigner(testSecret)
	require.NoError(t, err)
	unknownUserToken, err := own.Sign("mallory")
	require.NoError(t, err)

	validToken, err := own.Sign("admin")
	require.NoError(t, err)
	parts := strings.Split(validToken, ".")
	require.Len(t, parts, 3)
	tamperedToken := parts[0] + "." + parts[1] + "x." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &SessionClaims{Username: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := map[string]string{
		"no cookie":       "",
		"garbage":         "not-a-token",
		"foreign secret":  foreignToken,
		"unknown user":    unknownUserToken,
		"tampered claims": tamperedToken,
		"alg none":        noneToken,
	}
	for name, token := range testCases {
		t.Run(name, func(t *testing.T) {
			c, _ := contextWithCookie(token)
			_, ok := m.Identity(c)
			assert.False(t, ok)
			assert.False(t, m.IsAuthenticated(c))
		})
	}
}

func TestSessionManager_ClearIdentity(t *testing.T) {
	m := newTestManager(t)

	c, w := contextWithCookie("")
	m.ClearIdentity(c)

	cookie := sessionCookieFrom(t, w)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestTokenSigner_ParseErrors(t *testing.T) {
	signer, err := newTokenSigner(testSecret)
	require.NoError(t, err)

	_, err = signer.Parse("a.b.c")
	assert.ErrorIs(t, err, models.ErrInvalidSession)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = signer.Parse(token)
	assert.ErrorIs(t, err, models.ErrInvalidSession, "токен без username невалиден")
}
