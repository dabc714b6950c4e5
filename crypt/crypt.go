package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/gobeaver/crypto-kit/bytearray"
)

// ErrInvalidKeySize is returned when a key is not 32 bytes (AES-256).
var ErrInvalidKeySize = errors.New("key must be 32 bytes for AES-256")

// ErrShortCiphertext is returned when encrypted input is too short to
// contain the inline IV.
var ErrShortCiphertext = errors.New("ciphertext shorter than the IV")

const keySize = 32

func newStream(key, iv []byte) (cipher.Stream, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewCTR(block, iv), nil
}

func newIV() ([]byte, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

// EncryptString encrypts the given string, returning base64 of the IV
// followed by the ciphertext. An empty plaintext returns an empty string.
func EncryptString(plaintext string, key []byte) (string, error) {
	if len(key) != keySize {
		return "", ErrInvalidKeySize
	}
	if plaintext == "" {
		return "", nil
	}
	iv, err := newIV()
	if err != nil {
		return "", err
	}
	stream, err := newStream(key, iv)
	if err != nil {
		return "", err
	}

	data := []byte(plaintext)
	out := make([]byte, aes.BlockSize+len(data))
	copy(out, iv)
	stream.XORKeyStream(out[aes.BlockSize:], data)
	return *bytearray.ToBase64(out), nil
}

// DecryptString decrypts a string produced by EncryptString. An empty input
// returns an empty string; malformed base64 or input shorter than one block
// is an error. Decrypting with the wrong key does not fail, it yields
// garbage, which is inherent to CTR mode.
func DecryptString(encrypted string, key []byte) (string, error) {
	if len(key) != keySize {
		return "", ErrInvalidKeySize
	}
	if encrypted == "" {
		return "", nil
	}
	data, err := bytearray.FromBase64(&encrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	if len(data) < aes.BlockSize {
		return "", ErrShortCiphertext
	}

	stream, err := newStream(key, data[:aes.BlockSize])
	if err != nil {
		return "", err
	}
	plaintext := make([]byte, len(data)-aes.BlockSize)
	stream.XORKeyStream(plaintext, data[aes.BlockSize:])
	return string(plaintext), nil
}

// EncryptStream writes a fresh IV to dst and returns a writer that encrypts
// everything written to it into dst. The caller retains responsibility for
// closing dst.
func EncryptStream(dst io.Writer, key []byte) (io.Writer, error) {
	iv, err := newIV()
	if err != nil {
		return nil, err
	}
	stream, err := newStream(key, iv)
	if err != nil {
		return nil, err
	}
	if _, err := dst.Write(iv); err != nil {
		return nil, fmt.Errorf("failed to write IV: %w", err)
	}
	return cipher.StreamWriter{S: stream, W: dst}, nil
}

// DecryptStream reads the inline IV from src and returns a reader yielding
// the decrypted remainder of the stream.
func DecryptStream(src io.Reader, key []byte) (io.Reader, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(src, iv); err != nil {
		return nil, fmt.Errorf("failed to read IV: %w", err)
	}
	stream, err := newStream(key, iv)
	if err != nil {
		return nil, err
	}
	return cipher.StreamReader{S: stream, R: src}, nil
}
