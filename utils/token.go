package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenSignature = errors.New("token signature is invalid")
)

// TokenClaims is the identity assertion carried by a verified token.
type TokenClaims struct {
	UserID int
	Email  string
}

// TokenManager issues and verifies signed bearer tokens. The signing
// secret and expiry come from configuration, loaded once at startup.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue produces a signed HS256 token encoding the user's id and email,
// valid from now until now plus the configured expiry.
func (m *TokenManager) Issue(userID int, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(m.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning its claims. It
// distinguishes expiry from signature failures from everything else so
// callers can tell a client to re-login on expiry specifically.
func (m *TokenManager) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})

	switch {
	case err == nil && token.Valid:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return nil, ErrTokenSignature
	default:
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	// JWT numbers decode as float64; normalize the subject to int here
	// so every downstream ownership comparison is int against int.
	sub, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrTokenMalformed
	}
	email, _ := claims["email"].(string)

	return &TokenClaims{UserID: int(sub), Email: email}, nil
}
