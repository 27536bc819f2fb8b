package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenMalformed    = errors.New("token is malformed")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenBadSignature = errors.New("token signature is invalid")
)

// Claims are the decoded token fields: subject user id, the access/refresh
// type tag and the registered issue/expiry timestamps.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
}

type TokenService interface {
	IssuePair(userID int64) (refresh string, access string, err error)
	Verify(tokenString string) (*Claims, error)
}

// tokens issues and verifies stateless HS256 tokens. Validity is determined
// purely by signature and expiry, there is no server-side session record.
type tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &tokens{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (t *tokens) issue(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *tokens) IssuePair(userID int64) (string, string, error) {
	refresh, err := t.issue(userID, TokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return "", "", err
	}

	access, err := t.issue(userID, TokenTypeAccess, t.accessTTL)
	if err != nil {
		return "", "", err
	}

	return refresh, access, nil
}

func (t *tokens) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenBadSignature
		}
		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenBadSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
