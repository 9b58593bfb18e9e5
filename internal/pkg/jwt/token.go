package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/piresc/tradepost/internal/pkg/models"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or issuer checks
var ErrInvalidToken = errors.New("invalid token")

// Claims identifies a marketplace user: the handle listings are posted under
// and the flair shown next to it
type Claims struct {
	Handle string `json:"handle"`
	Flair  string `json:"flair,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for handle valid for ttl
func GenerateToken(handle, flair string, cfg models.JWTConfig, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := Claims{
		Handle: handle,
		Flair:  flair,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   handle,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses an HS256 token and checks its issuer when one is configured
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, fmt.Errorf("%w: issuer %q", ErrInvalidToken, claims.Issuer)
	}
	return claims, nil
}
