// Package generate produces values that need to be random, including salt,
// token and password values.
//
// Every function draws from crypto/rand, the operating-system-backed secure
// random source. There is no fallback to a weaker generator: if the source
// fails, the error is returned and the caller should treat it as fatal.
//
//	// 256-bit hex token for use as an unpredictable identifier
//	token, err := generate.Token()
//
//	// base64 salt for key derivation (see the keys package)
//	salt, err := generate.Salt()
//
//	// 12-character alphanumeric password
//	password, err := generate.Password(12)
//
// Salts are not secret, but a salt must be stored alongside any
// password-derived key so the key can be derived again later.
//
// All functions are safe for concurrent use.
package generate
