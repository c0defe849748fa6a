package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrUnauthenticated: no usable credential was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden: a credential was presented but is invalid or expired.
	ErrForbidden = errors.New("forbidden")
)

// TokenService issues and verifies stateless bearer tokens. There is no
// server-side session store: the token authorizes whoever holds it, for its
// TTL, and cannot be revoked early.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

type IssuedToken struct {
	Token     string
	ClientID  string
	ExpiresIn time.Duration
}

// Issue mints an HS256 token carrying a fresh random 128-bit client id.
// No uniqueness check against prior tokens; collisions are cryptographically
// negligible.
func (s *TokenService) Issue() (IssuedToken, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return IssuedToken{}, fmt.Errorf("generate client id: %w", err)
	}
	cid := hex.EncodeToString(buf)

	now := time.Now()
	claims := jwt.MapClaims{
		"cid": cid,
		"iat": now.Unix(), // issued at
		"nbf": now.Unix(), // not before
		"exp": now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("sign token: %w", err)
	}
	return IssuedToken{Token: signed, ClientID: cid, ExpiresIn: s.ttl}, nil
}

// Verify validates a raw bearer credential and returns the embedded client id.
// Absent or unparseable credentials fail with ErrUnauthenticated; a bad
// signature or an expired token fails with ErrForbidden.
func (s *TokenService) Verify(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: missing bearer token", ErrUnauthenticated)
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew

	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return "", fmt.Errorf("%w: malformed token", ErrUnauthenticated)
		}
		return "", fmt.Errorf("%w: invalid or expired token", ErrForbidden)
	}
	if !token.Valid {
		return "", fmt.Errorf("%w: invalid token", ErrForbidden)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: claims parsing error", ErrForbidden)
	}
	cid, _ := claims["cid"].(string)
	if cid == "" {
		return "", fmt.Errorf("%w: missing client id claim", ErrForbidden)
	}
	return cid, nil
}
