// Package password hashes passwords for storage and verifies login attempts
// against stored hashes. This is for credential storage and is distinct from
// key derivation (see the keys package): a stored hash is never usable as an
// encryption key.
//
//	hash, err := password.Hash(plaintext)
//	// store hash; never store plaintext
//
//	ok, err := password.Verify(attempt, hash)
//
// Each hash carries its own salt and iteration count, so the default work
// factor can be raised without invalidating hashes already stored.
// Verification uses a constant-time comparison.
package password
