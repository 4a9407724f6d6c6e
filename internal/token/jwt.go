package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/respite-app/respite-server/internal/model"
)

// Claims is the fixed claim schema carried by every token. It never includes
// the password hash or other secret material.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
	Img   string `json:"img,omitempty"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key and
// token time-to-live.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// Generate mints a signed bearer token carrying the identity claims with an
// absolute expiry derived from the configured TTL.
func (j *JWT) Generate(identity model.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email: identity.Email,
		Name:  identity.Name,
		Img:   identity.Img,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a token and extracts the identity claims. It distinguishes
// expired tokens from tokens signed with a different secret and from tokens
// that are not structurally valid at all.
func (j *JWT) Parse(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return model.Identity{}, model.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return model.Identity{}, model.ErrTokenInvalid
		default:
			return model.Identity{}, model.ErrTokenMalformed
		}
	}
	if !token.Valid {
		return model.Identity{}, model.ErrTokenInvalid
	}

	return model.Identity{Email: claims.Email, Name: claims.Name, Img: claims.Img}, nil
}
