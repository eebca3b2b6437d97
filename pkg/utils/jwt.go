package utils

import (
	"backend_hatid/pkg/config"
	"backend_hatid/pkg/models"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the custom JWT claims
type TokenClaims struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for a staff user
func GenerateToken(userID, email string, role models.Role) (string, error) {
	expiresIn := config.AppConfig.JWTExpiresIn
	var duration time.Duration

	switch expiresIn {
	case "7d":
		duration = 7 * 24 * time.Hour
	case "1d":
		duration = 24 * time.Hour
	case "30m":
		duration = 30 * time.Minute
	default:
		duration = 7 * 24 * time.Hour
	}

	claims := TokenClaims{
		ID:    userID,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken verifies and parses a JWT token
func VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
