package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "success", password: "testPassword123!", wantErr: false},
		{name: "empty password", password: "", wantErr: false},
		{name: "unicode", password: "пароль🔐", wantErr: false},
		{name: "special chars", password: "p@ssw0rd!#$%", wantErr: false},
		{name: "null byte", password: "pass\x00word", wantErr: false},
		{name: "over 72 bytes rejected by bcrypt", password: strings.Repeat("a", 80), wantErr: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := &Bcrypt{Cost: bcrypt.MinCost}

			// Act
			hash, err := b.Hash(test.password)

			// Assert
			if (err != nil) != test.wantErr {
				t.Fatalf("Hash() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr {
				if hash == "" {
					t.Error("Hash() returned empty hash")
				}
				if !strings.HasPrefix(hash, "$2a$") {
					t.Errorf("Hash() = %q, want bcrypt digest", hash)
				}
				if strings.Contains(hash, test.password) && test.password != "" {
					t.Error("Hash() must not embed the plaintext")
				}
			}
		})
	}
}

func TestBcrypt_Hash_UniqueSalts(t *testing.T) {
	// Arrange
	b := &Bcrypt{Cost: bcrypt.MinCost}
	password := "samePassword1!"

	// Act
	hash1, err1 := b.Hash(password)
	hash2, err2 := b.Hash(password)

	// Assert
	if err1 != nil || err2 != nil {
		t.Fatalf("Hash() errors = %v, %v", err1, err2)
	}
	if hash1 == hash2 {
		t.Error("Hash() should generate different digests with unique salts")
	}
}

func TestBcrypt_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		want     bool
	}{
		{name: "matching password", password: "Abcdef1!", attempt: "Abcdef1!", want: true},
		{name: "wrong password", password: "Abcdef1!", attempt: "Abcdef2!", want: false},
		{name: "empty attempt", password: "Abcdef1!", attempt: "", want: false},
		{name: "case sensitive", password: "Abcdef1!", attempt: "abcdef1!", want: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := &Bcrypt{Cost: bcrypt.MinCost}
			hash, err := b.Hash(test.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			// Act
			ok, err := b.Verify(test.attempt, hash)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if ok != test.want {
				t.Errorf("Verify() = %v, want %v", ok, test.want)
			}
		})
	}
}

// Requirement: a malformed stored hash verifies as false, it never errors or
// panics.
func TestBcrypt_Verify_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "not a bcrypt digest", hash: "plaintext-left-over"},
		{name: "truncated digest", hash: "$2a$10$tooShort"},
		{name: "wrong prefix", hash: "$argon2id$v=19$m=65536,t=3,p=2$abc$def"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := NewBcrypt()

			// Act
			ok, err := b.Verify("Abcdef1!", test.hash)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v, want nil", err)
			}
			if ok {
				t.Error("Verify() = true for malformed hash")
			}
		})
	}
}

func TestNewBcrypt_DefaultCost(t *testing.T) {
	b := NewBcrypt()
	if b.Cost != bcrypt.DefaultCost {
		t.Errorf("Cost = %d, want %d", b.Cost, bcrypt.DefaultCost)
	}
}
