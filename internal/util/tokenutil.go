package util

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"

	"github.com/lankipolo123/styleHive-server/models"
)

// Access tokens expire after one day.
const AccessTokenExpiry = 24 * time.Hour

// JwtCustomClaims carries the user identity and the admin flag the
// authorization middleware gates on.
type JwtCustomClaims struct {
	UserID  uint `json:"userId"`
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs an HS256 token for the given user.
func CreateAccessToken(user *models.User, secret string) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return t, nil
}

// ParseToken validates the signature, algorithm and expiry of a token and
// returns its claims.
func ParseToken(requestToken string, secret string) (*JwtCustomClaims, error) {
	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
