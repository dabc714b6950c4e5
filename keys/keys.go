package keys

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/gobeaver/crypto-kit/bytearray"
	"github.com/gobeaver/crypto-kit/generate"
)

const (
	// SymmetricKeySize is the key size for symmetric keys, in bits.
	SymmetricKeySize = 256

	// SymmetricKeyBytes is the key size for symmetric keys, in bytes.
	SymmetricKeyBytes = SymmetricKeySize / 8

	// Iterations is the default iteration count for password-based key
	// derivation. Changing it changes every key derived with
	// GenerateSecretKey, so it stays at the value existing keys were
	// derived with; see GenerateSecretKeyIterations for migration.
	Iterations = 1024

	// AsymmetricKeySize is the modulus size for asymmetric key pairs, in bits.
	AsymmetricKeySize = 3072
)

// NewSecretKey generates a new random secret (symmetric) key for use with
// AES. AES keys are just random bytes from a strong source of randomness,
// so this is equivalent to generate.ByteArray(SymmetricKeyBytes).
//
// The key cannot be regenerated, so the caller must store it (encrypted)
// if it will be needed again.
func NewSecretKey() ([]byte, error) {
	return generate.ByteArray(SymmetricKeyBytes)
}

// GenerateSecretKey generates a secret (symmetric) key from the given
// password and salt. Given the same password and salt, this function
// (re)generates the same key every time. A nil password yields a nil key
// and no error.
//
// The password can be anything suitably secret. If a user's plaintext
// password is used, derivation is secure but the key can never be recovered
// if the password is forgotten. If a recoverable value such as a password
// hash is used instead, the key survives a forgotten password but the
// derivation is only as secret as that value. It's a trade-off.
//
// The salt should come from generate.Salt. Store it (salt isn't sensitive)
// and supply the same value each time to get the same key back. Using salt
// ensures that keys generated from the same password are different, so two
// users sharing a password don't end up with identical keys.
func GenerateSecretKey(password *string, salt string) ([]byte, error) {
	return GenerateSecretKeyIterations(password, salt, Iterations)
}

// GenerateSecretKeyIterations is GenerateSecretKey with an explicit
// iteration count. Deployments that want a stronger work factor than the
// default should derive with a higher count and store the count alongside
// the salt, so stored keys remain re-derivable after the count is raised
// again.
func GenerateSecretKeyIterations(password *string, salt string, iterations int) ([]byte, error) {
	if password == nil {
		return nil, nil
	}
	if iterations < 1 {
		return nil, fmt.Errorf("iteration count must be at least 1, got %d", iterations)
	}
	saltBytes, err := bytearray.FromBase64(&salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	return pbkdf2.Key([]byte(*password), saltBytes, iterations, SymmetricKeyBytes, sha256.New), nil
}

// NewKeyPair generates a new public-private (asymmetric) RSA key pair with
// an AsymmetricKeySize-bit modulus and public exponent 65537. Key pairs are
// always random; there is no deterministic variant.
func NewKeyPair() (*rsa.PrivateKey, error) {
	keyPair, err := rsa.GenerateKey(rand.Reader, AsymmetricKeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}
	return keyPair, nil
}
