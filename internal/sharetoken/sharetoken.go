// Package sharetoken generates the opaque tokens used for public read-only
// chessboard links.
package sharetoken

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length is the number of characters in a token.
const Length = 10

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// New returns a random token of Length characters drawn uniformly from
// [A-Za-z0-9].
func New() (string, error) {
	buf := make([]byte, Length)
	size := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("generating share token: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// Valid reports whether s has the shape of a share token.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
