package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Service issues and verifies HS256 access tokens whose subject is the admin username.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Claims struct {
	jwtlib.RegisteredClaims
}

type Option func(*Service)

// WithClock replaces time.Now for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(secret string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) IssueToken(subject string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken checks signature, algorithm and expiry and returns the subject.
func (s *Service) VerifyToken(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
