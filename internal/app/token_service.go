package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

var (
	ErrTokenConfig  = errors.New("token service is not configured")
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenService mints and checks the HS256 bearer tokens that callers of the
// decision API present.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Enabled reports whether a secret is configured.
func (s *TokenService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// Issue returns a signed token for subject valid for ttl.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if !s.Enabled() {
		return "", ErrTokenConfig
	}
	if subject == "" {
		return "", fmt.Errorf("subject is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := s.now()
	claims := jwt.StandardClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature, expiry and issuer of tokenString and returns
// its subject.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if !s.Enabled() {
		return "", ErrTokenConfig
	}

	var claims jwt.StandardClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if s.issuer != "" && !claims.VerifyIssuer(s.issuer, true) {
		return "", fmt.Errorf("%w: issuer %q", ErrTokenInvalid, claims.Issuer)
	}
	return claims.Subject, nil
}
