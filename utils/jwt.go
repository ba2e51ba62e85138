package utils

import (
	"errors"
	"time"

	"fifty3/config"

	"github.com/golang-jwt/jwt"
)

// SessionTokenTTL bounds a trainer's browser session.
const SessionTokenTTL = 12 * time.Hour

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "FIFTY3"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for a resolved trainer. The subject is
// the in-app trainer id, not the identity provider's uid.
func GenerateToken(trainerID, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   trainerID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractTrainerIDFromToken extracts the trainer id (subject) from a valid
// session token.
func ExtractTrainerIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}
