package generate

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/gobeaver/crypto-kit/bytearray"
)

const (
	// TokenBits is the length of tokens, in bits.
	TokenBits = 256

	// SaltBytes is the length of salt values, in bytes.
	SaltBytes = 16

	// PasswordCharacters is the alphabet passwords are drawn from.
	PasswordCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

const tokenLengthBytes = TokenBits / 8

// ErrInvalidLength is returned when a negative length is requested.
var ErrInvalidLength = errors.New("length must not be negative")

// ByteArray returns a byte slice of the specified length, populated from the
// secure random source. A length of zero returns an empty slice.
func ByteArray(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// Token generates a random token: TokenBits of randomness rendered as a hex
// string. Tokens are unpredictable and, in practice, unique across calls.
func Token() (string, error) {
	tokenBytes, err := ByteArray(tokenLengthBytes)
	if err != nil {
		return "", err
	}
	return *bytearray.ToHex(tokenBytes), nil
}

// Salt generates a random salt value of SaltBytes length, base64-encoded for
// easy storage. If a salt value is needed by an API call, the documentation
// of that call should reference this function; other than that it should not
// be necessary to call this in normal usage.
func Salt() (string, error) {
	salt, err := ByteArray(SaltBytes)
	if err != nil {
		return "", err
	}
	return *bytearray.ToBase64(salt), nil
}

// Password generates a random password of the specified length, with each
// character drawn independently and uniformly from PasswordCharacters.
// The draw uses rand.Int over the alphabet size, so no character is favoured
// by modulo bias.
func Password(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	alphabetLen := big.NewInt(int64(len(PasswordCharacters)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		password[i] = PasswordCharacters[n.Int64()]
	}
	return string(password), nil
}

// TokenID generates a 64-character identifier from two UUIDs with the
// hyphens stripped. Unlike Token the result is not uniformly random hex
// (UUIDv4 fixes six bits), so prefer Token where full entropy matters.
func TokenID() string {
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
