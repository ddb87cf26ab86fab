package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrMissingJWTSecret = errors.New("missing JWT secret")

type tokenClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// JWTTokenMaker signs and verifies HS256 bearer tokens. The subject carries
// the user or client id; the scope claim separates staff sessions from
// portal sessions.
type JWTTokenMaker struct {
	secret []byte
}

var _ interfaces.ITokenMaker = (*JWTTokenMaker)(nil)

func NewJWTTokenMaker(secret string) (*JWTTokenMaker, error) {
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &JWTTokenMaker{secret: []byte(secret)}, nil
}

func (m *JWTTokenMaker) CreateToken(subject, scope string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTTokenMaker) VerifyToken(token string) (subject, scope string, err error) {
	claims := &tokenClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Scope, nil
}
