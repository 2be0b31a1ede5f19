package auth

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims carries the identity asserted by the external auth provider. The
// service trusts the verified email and never derives identity itself.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
