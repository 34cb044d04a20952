package auth

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionClaims carries the session payload inside a signed JWT.
type sessionClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// jwtSessionCodec implements service.SessionCodec with HMAC-SHA256 signed JWTs.
// The token is self-contained; nothing is persisted server-side, so rotating
// the secret invalidates every outstanding session at once.
type jwtSessionCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTSessionCodec creates a session codec signing with the given secret.
// ttl is the absolute session lifetime measured from Encode.
func NewJWTSessionCodec(secret string, ttl time.Duration) (service.SessionCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	return &jwtSessionCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Encode builds a signed token for the user valid for the configured lifetime.
func (c *jwtSessionCodec) Encode(userID uuid.UUID, username, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.ttl)

	claims := sessionClaims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return signed, expiresAt, nil
}

// Decode verifies the token signature and recovers the session. Expiry is
// deliberately not validated here; the caller checks Session.Expired so it can
// clear the stale cookie at the same time.
func (c *jwtSessionCodec) Decode(tokenString string) *entity.Session {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}

	return &entity.Session{
		UserID:    userID,
		Username:  claims.Username,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}
