package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key"

// mintToken signs a token the way the accounts service does.
func mintToken(t *testing.T, subject string, authority Authority, expiresIn time.Duration, secret string) string {
	t.Helper()

	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		Authority: authority,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func TestParseTokenValid(t *testing.T) {
	tokenString := mintToken(t, "u-42", AuthorityAdmin, time.Hour, testSecret)

	claims, err := ParseToken(tokenString, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "u-42" {
		t.Errorf("subject = %q", claims.Subject)
	}
	if claims.Authority != AuthorityAdmin {
		t.Errorf("authority = %q", claims.Authority)
	}
}

func TestParseTokenRejections(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"expired", mintToken(t, "u-42", AuthorityAdmin, -time.Minute, testSecret)},
		{"wrong secret", mintToken(t, "u-42", AuthorityAdmin, time.Hour, "other-secret")},
		{"missing subject", mintToken(t, "", AuthorityAdmin, time.Hour, testSecret)},
		{"missing authority", mintToken(t, "u-42", "", time.Hour, testSecret)},
		{"garbage", "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, testSecret)
			if !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestIdentityFromClaims(t *testing.T) {
	tokenString := mintToken(t, "u-1", AuthorityOperator, time.Hour, testSecret)
	claims, err := ParseToken(tokenString, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	identity := IdentityFromClaims(claims)
	if identity.UID != "u-1" {
		t.Errorf("uid = %q", identity.UID)
	}
	if !identity.Permissions.CanEdit || !identity.Permissions.CanCreate {
		t.Errorf("operator permissions = %+v", identity.Permissions)
	}
	if identity.Permissions.CanDelete {
		t.Error("operator should not delete")
	}
}

func TestPermissionsForAuthority(t *testing.T) {
	tests := []struct {
		authority Authority
		want      Permissions
	}{
		{AuthorityAdmin, Permissions{CanEdit: true, CanCreate: true, CanDelete: true}},
		{AuthorityOperator, Permissions{CanEdit: true, CanCreate: true}},
		{AuthorityViewer, Permissions{}},
		{"unknown-role", Permissions{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.authority), func(t *testing.T) {
			if got := PermissionsForAuthority(tt.authority); got != tt.want {
				t.Errorf("permissions = %+v, want %+v", got, tt.want)
			}
		})
	}
}
