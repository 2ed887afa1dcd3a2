package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookieName - имя cookie, в которой хранится подписанный токен.
const SessionCookieName = "campaign_session"

// SessionManager хранит личность пользователя в подписанной cookie.
// Требуется целостность username, но не его конфиденциальность.
type SessionManager struct {
	signer       *tokenSigner
	store        *CredentialStore
	secureCookie bool
	logger       *zap.Logger
}

// NewSessionManager создает менеджер сессий.
func NewSessionManager(secret string, store *CredentialStore, secureCookie bool, logger *zap.Logger) (*SessionManager, error) {
	signer, err := newTokenSigner(secret)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("credential store cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionManager{
		signer:       signer,
		store:        store,
		secureCookie: secureCookie,
		logger:       logger.Named("SessionManager"),
	}, nil
}

// SetIdentity выпускает токен для пользователя и записывает его в cookie.
func (m *SessionManager) SetIdentity(c *gin.Context, username string) error {
	token, err := m.signer.Sign(username)
	if err != nil {
		m.logger.Error("Failed to sign session token", zap.String("username", username), zap.Error(err))
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	// MaxAge 0 - cookie живет до закрытия браузера
	c.SetCookie(SessionCookieName, token, 0, "/", "", m.secureCookie, true)
	return nil
}

// Identity возвращает имя пользователя из cookie, если токен валиден
// и пользователь все еще есть в хранилище.
func (m *SessionManager) Identity(c *gin.Context) (string, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return "", false
	}
	claims, err := m.signer.Parse(cookie)
	if err != nil {
		m.logger.Debug("Session token rejected", zap.Error(err))
		return "", false
	}
	if !m.store.Has(claims.Username) {
		m.logger.Warn("Session token refers to unknown user", zap.String("username", claims.Username))
		return "", false
	}
	return claims.Username, true
}

// IsAuthenticated сообщает, есть ли у запроса валидная сессия.
func (m *SessionManager) IsAuthenticated(c *gin.Context) bool {
	_, ok := m.Identity(c)
	return ok
}

// ClearIdentity удаляет cookie сессии.
func (m *SessionManager) ClearIdentity(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.secureCookie, true)
}
