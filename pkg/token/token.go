// Package token signs and verifies the bearer tokens the server issues at
// sign-in. Tokens are self-contained; nothing is persisted and nothing can be
// revoked before its expiry.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
)

// subjectPrefix namespaces token subjects so a token minted by another system
// with the same secret shape can never resolve to a user id here.
const subjectPrefix = "dark-blue-parrot-user|"

type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token binding userID, valid for the codec's ttl.
func (c *Codec) Issue(userID string) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub": subjectPrefix + userID,
		"exp": now.Add(c.ttl).Unix(),
		"iat": now.Unix(),
		"jti": uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature, expiry and subject namespace, and returns the bare
// user id the token was issued for.
func (c *Codec) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil || !parsed.Valid {
		return "", apperror.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || !strings.HasPrefix(subject, subjectPrefix) {
		return "", apperror.ErrInvalidToken
	}

	return strings.TrimPrefix(subject, subjectPrefix), nil
}
