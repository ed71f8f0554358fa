package infrastructure

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

var ErrInvalidToken = errors.New("invalid token")

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and parses session tokens carrying the caller's role.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (j *JWTService) GenerateToken(user *entities.User) (string, error) {
	now := j.now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the token and turns its claims into a User. The role
// claim is validated here; an unknown role makes the whole token invalid.
func (j *JWTService) ParseToken(raw string) (*entities.User, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role, err := entities.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user := &entities.User{
		Id:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}
	if claims.IssuedAt != nil {
		user.CreatedAt = claims.IssuedAt.Time
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return user, nil
}
