package password_test

import (
	"errors"
	"lodge/shared/password"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid password",
			password:    "validPassword123",
			expectError: false,
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
		{
			name:        "short password",
			password:    "abc",
			expectError: false,
		},
		{
			name:        "long password",
			password:    strings.Repeat("a", 72),
			expectError: false,
		},
		{
			name:        "password with special characters",
			password:    "p@ssw0rd!#$%",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected an error, got nil")
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if hash == "" {
				t.Errorf("expected a non-empty hash")
			}
			if hash == tt.password {
				t.Errorf("expected hash to differ from the plain password")
			}
		})
	}
}

func TestVerify(t *testing.T) {
	const plain = "validPassword123"

	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	tests := []struct {
		name          string
		password      string
		hash          string
		expectError   bool
		expectedError error
	}{
		{
			name:        "matching password",
			password:    plain,
			hash:        hash,
			expectError: false,
		},
		{
			name:          "wrong password",
			password:      "wrongPassword123",
			hash:          hash,
			expectError:   true,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty password",
			password:      "",
			hash:          hash,
			expectError:   true,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty hash",
			password:      plain,
			hash:          "",
			expectError:   true,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:        "malformed hash",
			password:    plain,
			hash:        "not-a-bcrypt-hash",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if !tt.expectError {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

				return
			}

			if err == nil {
				t.Errorf("expected an error, got nil")
			}
			if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestHashAndVerifyRoundTrip(t *testing.T) {
	passwords := []string{
		"simple",
		"with spaces in it",
		"unicode-пароль-密码",
	}

	for _, plain := range passwords {
		hash, err := password.Hash(plain)
		if err != nil {
			t.Fatalf("failed to hash %q: %v", plain, err)
		}

		if err := password.Verify(plain, hash); err != nil {
			t.Errorf("expected %q to verify against its own hash, got %v", plain, err)
		}
	}
}
