package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the JWT claims carried by session tokens minted by the
// external accounts service. Areawatch only verifies; it never mints.
type SessionClaims struct {
	jwt.RegisteredClaims
	Authority Authority `json:"authority"`
}

// ParseToken validates a session token against the shared secret and
// returns its claims. It checks the signature, expiry, and required fields.
func ParseToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	if claims.Authority == "" {
		return nil, fmt.Errorf("%w: missing authority", ErrTokenInvalid)
	}

	return claims, nil
}

// IdentityFromClaims builds the validated identity for a set of claims.
func IdentityFromClaims(claims *SessionClaims) *Identity {
	return &Identity{
		UID:         claims.Subject,
		Authority:   claims.Authority,
		Permissions: PermissionsForAuthority(claims.Authority),
	}
}
