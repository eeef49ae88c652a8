package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies operator access tokens. Tokens are minted by the
// identity service that fronts the console; this package only needs
// enough to verify them and, for tests and local development, to
// generate one.
type Service interface {
	GenerateAccessToken(operatorID string, role string, expiration time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(operatorID string, role string, expiration time.Duration) (string, int64, error) {
	expiresAt := time.Now().Add(expiration).Unix()

	claims := map[string]interface{}{
		"operator_id": operatorID,
		"role":        role,
		"type":        "access",
		"exp":         expiresAt,
		"iat":         time.Now().Unix(),
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}
