package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and verifying signed tokens
)

// AccessToken represents a signed HS256 JWT along with its expiry. The
// Token field contains the serialized JWT string; Exp the UTC expiration
// time. Access tokens are the only credential this service issues:
// there is no refresh token and no server-side session, so expiry is
// the single cap on credential lifetime.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// TokenClaims is what a verified access token asserts about its bearer:
// the user id (sub claim) and the email it was issued for. Nothing is
// re-checked against the users table; the token is trusted as
// self-contained.
type TokenClaims struct {
	UserID string
	Email  string
}

// ErrInvalidToken is returned when a token cannot be verified, carries
// an unexpected signing method, has expired, or misses the sub claim.
var ErrInvalidToken = errors.New("invalid or expired token")

// NewAccessToken builds and signs an HS256 JWT for a user. Claims are
// sub (user id), email, exp and iat.
func NewAccessToken(secret, userID, email string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies raw against secret and extracts the bearer
// claims. Expiry is enforced by the jwt library during Parse. Any
// verification failure collapses into ErrInvalidToken; callers do not
// need to distinguish why a token was rejected.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is ever used for signing; reject anything else so a
		// token cannot downgrade the algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	return TokenClaims{UserID: sub, Email: email}, nil
}
