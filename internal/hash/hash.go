// Package hash fingerprints rendered canvases.
//
// A render reports the SHA-256 digest of the encoded image so two runs of the
// same script can be compared without diffing image files. The package
// provides a real implementation using crypto/sha256 and a fake for tests.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Hasher provides an abstraction for content hashing.
type Hasher interface {
	// HashBytes computes the hash of data.
	HashBytes(data []byte) string

	// HashFile computes the hash of the file at the given path.
	HashFile(path string) (string, error)
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashBytes returns the hex-encoded SHA-256 of data.
func (h *SHA256Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashFile computes the SHA-256 hash of the file at the given path.
func (h *SHA256Hasher) HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// FakeHasher implements Hasher with a fixed digest for testing.
type FakeHasher struct {
	Digest string
}

// NewFakeHasher creates a FakeHasher returning digest.
func NewFakeHasher(digest string) *FakeHasher {
	return &FakeHasher{Digest: digest}
}

// HashBytes returns the fixed digest.
func (h *FakeHasher) HashBytes([]byte) string {
	return h.Digest
}

// HashFile returns the fixed digest.
func (h *FakeHasher) HashFile(string) (string, error) {
	return h.Digest, nil
}
