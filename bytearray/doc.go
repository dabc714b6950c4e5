// Package bytearray converts byte slices to and from hex, base64 and UTF-8
// string representations.
//
// Cryptography is mostly about manipulating byte slices, and this package
// provides the translations callers need around that:
//
//   - Plaintext strings need converting to bytes for encryption and, after
//     decryption, back to a string. This uses UTF-8.
//   - Encrypted bytes look like random noise, so they can't be represented
//     reliably as a plain string. Base64 (standard alphabet, with padding)
//     is the format used for storing and transmitting them.
//   - Hex is most useful when you need to print values out to see what's
//     going on, and is the canonical rendering for opaque tokens.
//
// The naming convention is set up from the point of view of the byte slice:
// a slice goes out with ToHex and comes back with FromHex, and the same
// pattern holds for base64 and strings.
//
// # Absence propagation
//
// Every function in this package propagates absence instead of failing on
// it: a nil []byte or nil *string input produces a nil output and no error.
// Only present-but-malformed input is an error, and every such error wraps
// [ErrDecode] so callers can test for it with errors.Is:
//
//	data, err := bytearray.FromBase64(&stored)
//	if errors.Is(err, bytearray.ErrDecode) {
//	    // stored value is corrupt, not merely missing
//	}
//
// The encodings are fixed for compatibility with previously stored values:
// lowercase hex on output (mixed case accepted on input), standard padded
// base64, and strict UTF-8 for string conversions.
package bytearray
