package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

const hashChunkSize = 4096

// HashReader computes the SHA-256 digest of a stream, reading in fixed-size
// chunks so memory stays bounded regardless of content size.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
