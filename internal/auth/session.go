package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fittrack/internal/domain"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "fittrack_session"

// Sessions binds browser requests to an authenticated user id via an HS256
// signed token carried in a cookie. The token is the only session state; there
// is no server-side session table.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &Sessions{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL reports the configured session lifetime, used to size the cookie MaxAge.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Issue signs a session token for the given user id.
func (s *Sessions) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token and returns the bound user id. Any
// failure, expiry and tampering included, is domain.ErrUnauthenticated.
func (s *Sessions) Verify(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, domain.ErrUnauthenticated
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, domain.ErrUnauthenticated
	}
	return userID, nil
}
