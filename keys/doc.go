// Package keys generates cryptographic keys.
//
// The following key types are available:
//
//   - Deterministic symmetric 256-bit AES keys, derived from a password and salt
//   - Random symmetric 256-bit AES keys
//   - Asymmetric 3072-bit RSA key pairs
//
// # Deterministic keys
//
// These are the easiest to manage as they don't need to be stored. So long
// as you pass in the same password and salt each time, the same key is
// generated every time:
//
//	salt, err := generate.Salt()
//	// store the salt; it is not secret
//	key, err := keys.GenerateSecretKey(&password, salt)
//
// The drawback is that if you want more than one key you'll need more than
// one password. If you only need one key this approach can be ideal, as you
// can use the user's plaintext password to generate it. Since a plaintext
// password is never stored (see the password package) the key can only be
// regenerated with the correct password. Bear in mind that if the user
// changes or resets their password this results in a different key, so
// you'll need a plan for recovering data encrypted with the old key and
// re-encrypting it with the new one.
//
// # Random keys
//
// These are simple to generate, but need to be stored because it's
// effectively impossible to regenerate the key:
//
//	key, err := keys.NewSecretKey()
//
// A stored copy should always be encrypted under another key before it is
// written anywhere.
//
// # Key pairs
//
// NewKeyPair generates an RSA key pair for asymmetric operations. Key pairs
// are always random, never deterministic. MarshalPrivateKey and friends
// convert keys to and from PEM for storage or transmission.
//
// # Derivation parameters
//
// GenerateSecretKey uses PBKDF2-HMAC-SHA256 with the Iterations constant,
// which is kept at its historical value so previously derived keys remain
// re-derivable. New deployments that want a higher work factor should use
// GenerateSecretKeyIterations and store the iteration count alongside the
// salt, so the count can be raised later without orphaning existing keys.
package keys
