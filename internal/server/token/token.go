// Package token issues and verifies the signed identity assertions exchanged
// between the services and the client. Tokens are stateless: nothing is
// stored server-side, trust derives from the HMAC signature alone.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mpetrov/dashauth/internal/common"
)

// Claims is the decoded claim set carried by a verified token. Subject holds
// the user id; Email and Name are copies of the profile at issue time.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Issue signs a time-bounded HS256 token for the given user identity.
func Issue(userID, email, name string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Email: email,
		Name:  name,
	})

	return t.SignedString(secretKey)
}

// Verify checks signature and expiry and returns the decoded claims.
// Malformed, tampered and expired tokens all yield common.ErrInvalidToken.
func Verify(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !t.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
