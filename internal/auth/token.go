package auth

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

const issuer = "project-tracker"

type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

// TokenIssuer выпускает и проверяет HS256 токены доступа
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *TokenIssuer) Issue(actor domain.Actor) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: actor.ID,
		Role:   string(actor.Role),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.ID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse проверяет подпись и срок действия токена и возвращает актора
func (i *TokenIssuer) Parse(token string) (domain.Actor, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		return i.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}), jwtlib.WithTimeFunc(i.now))
	if err != nil {
		return domain.Actor{}, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Actor{}, jwtlib.ErrTokenInvalidClaims
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok || claims.UserID == "" {
		return domain.Actor{}, errors.New("token carries no valid identity")
	}
	return domain.Actor{ID: claims.UserID, Role: role}, nil
}
