package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates session tokens. Revoked tokens are kept in
// a blacklist until they would have expired anyway.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	Now    func() time.Time

	blacklist *Blacklist
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		Secret:    []byte(secret),
		TTL:       ttl,
		Issuer:    "CafeOrderingApp",
		Now:       time.Now,
		blacklist: NewBlacklist(),
	}
}

func (ti *TokenIssuer) GenerateToken(userID, role string) (string, error) {
	now := ti.Now()
	claims := &CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    ti.Issuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ti.Secret)
	if err != nil {
		ErrorLogger.Errorf("Error generating token: %v", err)
		return "", err
	}
	return tokenString, nil
}

func (ti *TokenIssuer) ParseToken(tokenString string) (*CustomClaims, error) {
	if ti.blacklist.Contains(tokenString, ti.Now()) {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return ti.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(ti.Now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Revoke blacklists a token until its expiry.
func (ti *TokenIssuer) Revoke(tokenString string) {
	now := ti.Now()
	ti.blacklist.Purge(now)
	ti.blacklist.Add(tokenString, now.Add(ti.TTL))
}
