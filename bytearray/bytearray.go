package bytearray

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

// ToHex renders the given byte slice as a lowercase hex string.
// A nil input yields a nil result.
func ToHex(b []byte) *string {
	if b == nil {
		return nil
	}
	s := hex.EncodeToString(b)
	return &s
}

// FromHex parses the given hex string into a byte slice. Both lowercase and
// uppercase digits are accepted. A nil input yields a nil result; an empty,
// odd-length or non-hex string returns an error wrapping ErrDecode.
func FromHex(s *string) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	if *s == "" {
		return nil, fmt.Errorf("%w: empty hex string", ErrDecode)
	}
	b, err := hex.DecodeString(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

// ToBase64 encodes the given byte slice as a standard base64 string with
// padding. A nil input yields a nil result.
func ToBase64(b []byte) *string {
	if b == nil {
		return nil
	}
	s := base64.StdEncoding.EncodeToString(b)
	return &s
}

// FromBase64 decodes the given base64 string into a byte slice. A nil input
// yields a nil result; malformed base64 returns an error wrapping ErrDecode.
func FromBase64(s *string) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

// ToString converts the given byte slice to a string using UTF-8. A nil
// input yields a nil result; bytes that are not valid UTF-8 return an error
// wrapping ErrDecode.
func ToString(b []byte) (*string, error) {
	if b == nil {
		return nil, nil
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: invalid UTF-8 sequence", ErrDecode)
	}
	s := string(b)
	return &s, nil
}

// FromString converts the given string to a byte slice using UTF-8.
// A nil input yields a nil result.
func FromString(s *string) []byte {
	if s == nil {
		return nil
	}
	return []byte(*s)
}
