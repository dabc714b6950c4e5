package password_test

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/pbkdf2"

	"github.com/gobeaver/crypto-kit/password"
)

func TestHash(t *testing.T) {
	hash, err := password.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "" {
		t.Fatal("Hash() returned an empty string")
	}
	if !strings.HasPrefix(hash, "pbkdf2$") {
		t.Errorf("Hash() = %q, want pbkdf2$ prefix", hash)
	}

	// A fresh salt per call means the same password never hashes the same way.
	again, err := password.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == again {
		t.Error("Hash() produced identical output for two calls")
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		matchPassword string
		wantMatch     bool
	}{
		{
			name:          "correct password",
			password:      "secure_password_123",
			matchPassword: "secure_password_123",
			wantMatch:     true,
		},
		{
			name:          "incorrect password",
			password:      "secure_password_123",
			matchPassword: "wrong_password",
			wantMatch:     false,
		},
		{
			name:          "empty password",
			password:      "",
			matchPassword: "",
			wantMatch:     true,
		},
		{
			name:          "case sensitive",
			password:      "Password",
			matchPassword: "password",
			wantMatch:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			match, err := password.Verify(tt.matchPassword, hash)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if match != tt.wantMatch {
				t.Errorf("Verify() = %v, want %v", match, tt.wantMatch)
			}
		})
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "not a hash", hash: "plaintext"},
		{name: "wrong scheme", hash: "argon2id$1$c2FsdA==$aGFzaA=="},
		{name: "missing parts", hash: "pbkdf2$600000$c2FsdA=="},
		{name: "bad iteration count", hash: "pbkdf2$lots$c2FsdA==$aGFzaA=="},
		{name: "zero iterations", hash: "pbkdf2$0$c2FsdA==$aGFzaA=="},
		{name: "bad salt encoding", hash: "pbkdf2$600000$!!$aGFzaA=="},
		{name: "bad hash encoding", hash: "pbkdf2$600000$c2FsdA==$!!"},
		{name: "empty salt segment", hash: "pbkdf2$600000$$aGFzaA=="},
		{name: "empty hash segment", hash: "pbkdf2$1$c2FsdA==$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := password.Verify("anything", tt.hash)
			if err == nil {
				t.Fatalf("Verify() = %v, want error for %q", match, tt.hash)
			}
			if !errors.Is(err, password.ErrInvalidHash) {
				t.Errorf("Verify() error = %v, want ErrInvalidHash", err)
			}
			if match {
				t.Errorf("Verify() = true for malformed hash %q", tt.hash)
			}
		})
	}
}

func TestVerifyOldIterationCount(t *testing.T) {
	// Hashes carry their own iteration count, so values stored under an
	// older, lower default must keep verifying after the default changes.
	salt := []byte("0123456789abcdef")
	legacy := pbkdf2.Key([]byte("migrate me"), salt, 1024, 32, sha256.New)
	stored := fmt.Sprintf("pbkdf2$1024$%s$%s",
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(legacy))

	match, err := password.Verify("migrate me", stored)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !match {
		t.Error("Verify() = false for a hash stored with an older iteration count")
	}
}
