package crypto

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "token-test-secret-0123456789abcd"

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		email     string
		wantEmail string
	}{
		{
			name:      "registration token carries the email claim",
			userID:    "user-1",
			email:     "a@b.com",
			wantEmail: "a@b.com",
		},
		{
			name:      "sign-in token omits the email claim",
			userID:    "user-1",
			email:     "",
			wantEmail: "",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			issuer := NewTokenIssuer(testSecret, time.Hour)

			// Act
			token, err := issuer.Issue(test.userID, test.email)

			// Assert
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}
			if len(strings.Split(token, ".")) != 3 {
				t.Fatalf("Issue() = %q, want compact JWS", token)
			}

			claims, err := issuer.Parse(token)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if claims.UserID != test.userID {
				t.Errorf("user id claim = %q, want %q", claims.UserID, test.userID)
			}
			if claims.Email != test.wantEmail {
				t.Errorf("email claim = %q, want %q", claims.Email, test.wantEmail)
			}
		})
	}
}

// Requirement: tokens expire exactly ttl after issuance
func TestTokenIssuer_Expiry(t *testing.T) {
	// Arrange
	ttl := time.Hour
	issuer := NewTokenIssuer(testSecret, ttl)

	// Act
	token, err := issuer.Issue("user-1", "")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Assert
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("claims missing iat/exp")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != ttl {
		t.Errorf("exp - iat = %v, want %v", got, ttl)
	}
}

func TestTokenIssuer_Parse_Rejections(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	token, err := issuer.Issue("user-1", "")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "not-a-token",
		},
		{
			name: "tampered payload",
			token: func() string {
				parts := strings.Split(token, ".")
				parts[1] = "eyJpZCI6ImF0dGFja2VyIn0"
				return strings.Join(parts, ".")
			}(),
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewTokenIssuer("another-secret-0123456789abcdef0", time.Hour)
				tok, _ := other.Issue("user-1", "")
				return tok
			}(),
		},
		{
			name: "expired",
			token: func() string {
				expired := NewTokenIssuer(testSecret, -time.Minute)
				tok, _ := expired.Issue("user-1", "")
				return tok
			}(),
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			_, err := issuer.Parse(test.token)

			// Assert
			if err == nil {
				t.Error("Parse() should reject the token")
			}
		})
	}
}

func TestNewTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)
	if issuer.TTL() != DefaultTokenTTL {
		t.Errorf("TTL() = %v, want %v", issuer.TTL(), DefaultTokenTTL)
	}
}
