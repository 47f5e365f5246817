package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

// AuthTokenWrapper is the claim set of the mock-auth token. The role is
// client-asserted at login; nothing verifies it against a user registry.
type AuthTokenWrapper struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	wrapper.ExpiresAt = time.Now().Add(24 * time.Hour).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	claims := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrUnauthorized
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}
	return claims, nil
}
