package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/gobeaver/crypto-kit/generate"
)

const (
	iterations = 600000
	saltLength = 16
	keyLength  = 32

	scheme = "pbkdf2"
)

// ErrInvalidHash is returned when an encoded hash cannot be parsed.
var ErrInvalidHash = errors.New("invalid password hash format")

// Hash generates a salted hash of the given password, suitable for storing.
// The result encodes the scheme, iteration count, salt and hash as
// "pbkdf2$<iterations>$<salt>$<hash>", so the iteration default can change
// without breaking verification of previously stored values.
func Hash(password string) (string, error) {
	salt, err := generate.ByteArray(saltLength)
	if err != nil {
		return "", err
	}

	hash := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s", scheme, iterations,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(hash)), nil
}

// Verify checks a password against an encoded hash produced by Hash,
// re-deriving with the parameters stored in the hash and comparing in
// constant time. It returns an error only if the encoded hash is malformed;
// a wrong password is (false, nil).
func Verify(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 4 || parts[0] != scheme {
		return false, ErrInvalidHash
	}

	iter, err := strconv.Atoi(parts[1])
	if err != nil || iter < 1 {
		return false, fmt.Errorf("%w: bad iteration count %q", ErrInvalidHash, parts[1])
	}

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return false, fmt.Errorf("%w: failed to decode salt: %v", ErrInvalidHash, err)
	}

	hash, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, fmt.Errorf("%w: failed to decode hash: %v", ErrInvalidHash, err)
	}

	// An empty salt or hash segment decodes cleanly to zero bytes, and a
	// zero-length comparison would match any password.
	if len(salt) == 0 || len(hash) == 0 {
		return false, fmt.Errorf("%w: empty salt or hash", ErrInvalidHash)
	}

	computed := pbkdf2.Key([]byte(password), salt, iter, len(hash), sha256.New)
	return subtle.ConstantTimeCompare(hash, computed) == 1, nil
}
