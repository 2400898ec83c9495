package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionConfig struct {
	Issuer string
	Secret string
	TTL    time.Duration
}

// SessionManager issues the demo session token handed back by login.
// Nothing in the storefront verifies it on later requests: there is no
// authorization enforcement here, the token only exists so the client
// has a session artifact to hold on to.
type SessionManager struct {
	cfg SessionConfig
}

type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewSessionManager(cfg SessionConfig) *SessionManager {
	return &SessionManager{cfg: cfg}
}

func (m *SessionManager) Sign(email string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.cfg.TTL)
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString([]byte(m.cfg.Secret))
	return s, exp, err
}

func (m *SessionManager) Parse(tokenStr string) (*SessionClaims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*SessionClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
