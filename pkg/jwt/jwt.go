package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims extends jwt.RegisteredClaims; the subject is the editor's user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager signs and validates editor session tokens. The preview layer
// only ever asks "is there a current editor?" — no roles.
type Manager struct {
	signingKey     []byte
	issuer         string
	accessTokenTTL time.Duration
}

func NewManager(signingKey, issuer string, accessTTL time.Duration) *Manager {
	return &Manager{
		signingKey:     []byte(signingKey),
		issuer:         issuer,
		accessTokenTTL: accessTTL,
	}
}

// GenerateAccessToken creates a signed session token for an editor.
func (m *Manager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenTTL)),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.signingKey)
}

var ErrInvalidToken = errors.New("invalid token")

// Validate parses and verifies a token, returning its claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.signingKey, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
