package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

// Claims is the session-token payload: subject id and email plus the
// registered issued-at/expiry claims.
type Claims struct {
	SubjectID string `json:"sub_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens. The secret is
// injected at construction so tests can run with distinct secrets.
// A ttl of zero issues tokens without an expiry claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token carrying the subject's identity.
func (s *TokenService) Issue(subjectID, email string) (string, error) {
	claims := Claims{
		SubjectID: subjectID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes the token and returns its subject. Any signature,
// structure or expiry problem yields domain.ErrInvalidToken; an empty
// token yields domain.ErrMissingToken so callers can treat it as
// anonymous where that is a valid outcome.
func (s *TokenService) Verify(token string) (ports.Subject, error) {
	if token == "" {
		return ports.Subject{}, domain.ErrMissingToken
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.SubjectID == "" {
		return ports.Subject{}, domain.ErrInvalidToken
	}

	return ports.Subject{ID: claims.SubjectID, Email: claims.Email}, nil
}
