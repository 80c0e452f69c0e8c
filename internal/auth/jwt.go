package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"

	// MinSecretLength is the shortest HS256 secret accepted for signing.
	MinSecretLength = 32

	issuer = "starsystem-server"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func checkSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT secret is required but not set")
	}
	if len(secret) < MinSecretLength {
		return fmt.Errorf("JWT secret must be at least %d characters long for security", MinSecretLength)
	}
	return nil
}

// GenerateAdminToken signs an admin token for subject that expires after ttl.
func GenerateAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	if err := checkSecret(secret); err != nil {
		return "", fmt.Errorf("cannot generate JWT: %w", err)
	}

	now := time.Now()
	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateJWT(secret, tokenString string) (*Claims, error) {
	if err := checkSecret(secret); err != nil {
		return nil, fmt.Errorf("cannot validate JWT: %w", err)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
