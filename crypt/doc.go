// Package crypt provides simple encryption and decryption of strings and
// streams using AES-256 in CTR mode.
//
// The cipher, mode and IV handling are fixed so callers can simply request
// encryption and decryption without selecting parameters:
//
//   - AES: the NIST standard block cipher.
//   - CTR mode: a NIST standard streaming mode, so no padding is involved
//     and streams can be processed incrementally.
//   - Inline initialisation vector: a fresh random IV is generated for each
//     encryption and transmitted as the first block of the output, which
//     avoids handling the IV as an out-of-band parameter.
//
// Keys come from the keys package, either random (keys.NewSecretKey) or
// password-derived (keys.GenerateSecretKey):
//
//	key, err := keys.NewSecretKey()
//	encrypted, err := crypt.EncryptString("some sensitive value", key)
//	decrypted, err := crypt.DecryptString(encrypted, key)
//
// For streams, EncryptStream wraps a writer and DecryptStream wraps a
// reader:
//
//	w, err := crypt.EncryptStream(dst, key)
//	_, err = io.Copy(w, src)
//
// CTR mode is malleable: it provides confidentiality but not integrity.
// If tampering with the ciphertext must be detectable, add a MAC over the
// encrypted output.
package crypt
