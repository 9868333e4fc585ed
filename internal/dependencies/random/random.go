package random

import (
	"crypto/rand"
	"math/big"
)

// SessionAlphabet is the character set used for session ids
const SessionAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Random generates identifiers; swapped for a mock in tests
type Random interface {
	// String generates a random string of the given length from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String generates a random string of the given length from alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			n = big.NewInt(0)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out)
}
