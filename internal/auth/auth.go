package auth

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Guard answers one question: does the supplied secret grant admin access?
// It is injected into handlers so the comparison lives in one place. When a
// bcrypt hash is configured it wins over the plaintext password.
type Guard struct {
	password string
	passHash string
}

// NewGuard builds a Guard from a plaintext password and/or a bcrypt hash.
func NewGuard(password, passHash string) *Guard {
	return &Guard{password: password, passHash: passHash}
}

// Check reports whether the supplied secret is authorized.
func (g *Guard) Check(supplied string) bool {
	if supplied == "" {
		return false
	}
	if g.passHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passHash), []byte(supplied)) == nil
	}
	if g.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.password), []byte(supplied)) == 1
}

// TokenService issues and verifies short-lived admin tokens so the browser
// does not have to hold the shared password across requests.
type TokenService struct {
	hmac []byte
	ttl  time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{hmac: []byte(secret), ttl: 8 * time.Hour}
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue returns a signed admin token.
func (s *TokenService) Issue() (string, error) {
	now := time.Now()
	c := &claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "nursing-sim",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(s.hmac)
}

// Verify reports whether tokenStr is a valid, unexpired admin token.
func (s *TokenService) Verify(tokenStr string) bool {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.hmac, nil
	})
	if err != nil || !token.Valid {
		return false
	}
	c, ok := token.Claims.(*claims)
	return ok && c.Role == "admin"
}
