package auth

import (
	"errors"
	"fmt"
	"time"

	"campaign-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "campaign-server"

// SessionClaims - содержимое подписанного токена сессии.
// Срок жизни не задается: сессия живет, пока браузер хранит cookie.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// tokenSigner подписывает и проверяет токены сессии секретом, переданным при создании.
type tokenSigner struct {
	secret []byte
}

func newTokenSigner(secret string) (*tokenSigner, error) {
	if secret == "" {
		return nil, models.ErrEmptySecret
	}
	return &tokenSigner{secret: []byte(secret)}, nil
}

// Sign создает HS256 токен для указанного пользователя.
func (s *tokenSigner) Sign(username string) (string, error) {
	claims := &SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Parse проверяет подпись токена и возвращает его claims.
func (s *tokenSigner) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, models.ErrInvalidSession
		}
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidSession, err)
	}
	if !token.Valid {
		return nil, models.ErrInvalidSession
	}
	if claims.Username == "" {
		return nil, fmt.Errorf("%w: username missing", models.ErrInvalidSession)
	}
	return claims, nil
}
