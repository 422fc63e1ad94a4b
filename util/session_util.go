package util

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/nilotpaul/fanlift-auth/setting"
)

// GenerateSessionToken signs an HS256 session token for userID.
func GenerateSessionToken(userID string, secret string) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("session secret is not configured")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(setting.SessionExpiry).Unix(),
	})

	ts, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return ts, nil
}
