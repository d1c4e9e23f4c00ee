package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AccessClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues the login access token. No password check is
// performed and the token carries no expiry; both are the documented
// contract of the login stub.
type TokenService struct {
	Secret []byte
}

func (s *TokenService) CreateAccessToken(username string) (string, error) {
	claims := AccessClaims{
		Name: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(time.Now()),
			ID:       uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func AccessClaimsFromToken(tokenString string, secret []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
