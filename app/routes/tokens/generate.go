package tokens

import (
	"crypto/rand"
	"math/big"
)

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// TokenCodeLength is within the 8-12 character window the entry
	// form accepts.
	TokenCodeLength = 8
)

// GenerateTokenCode returns a random uppercase alphanumeric code like
// MATH01AB. The database enforces global uniqueness; the caller
// retries on a collision.
func GenerateTokenCode() string {
	code := make([]byte, TokenCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			panic(err)
		}
		code[i] = tokenAlphabet[n.Int64()]
	}
	return string(code)
}
