package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookline/catalog/internal/model"
)

// Claims are the JWT claims carried by access tokens. The registered
// subject claim holds the account email.
type Claims struct {
	jwt.RegisteredClaims
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by a symmetric HMAC signature. The
// signing secret, algorithm and token lifetime are fixed at construction.
type JWT struct {
	secretKey []byte
	method    jwt.SigningMethod
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a JWT token manager. The algorithm must name an HMAC
// signing method (HS256, HS384 or HS512).
func NewJWT(secretKey, algorithm string, ttl time.Duration) (*JWT, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC", algorithm)
	}

	return &JWT{
		secretKey: []byte(secretKey),
		method:    method,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

// Generate creates a signed token for the given subject with an expiry of
// now plus the configured lifetime.
func (j *JWT) Generate(subject string) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(j.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse verifies signature and expiry and returns the subject claim.
// Expired tokens yield model.ErrTokenExpired; any other failure yields
// model.ErrTokenInvalid.
func (j *JWT) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrTokenInvalid
	}
	if !token.Valid {
		return "", model.ErrTokenInvalid
	}

	return claims.Subject, nil
}
