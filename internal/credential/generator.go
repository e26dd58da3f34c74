// Package credential produces the generated secrets attached to a new game
// account: the initial plaintext password, the legacy 11-digit numeric id,
// and the MD5 digest the game server stores in place of the plaintext.
package credential

import (
	"crypto/rand"
)

const (
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	passwordLength   = 6

	digitAlphabet   = "0123456789"
	numericIDLength = 11
)

// Generator produces random credentials. It is stateless and safe for
// concurrent use.
type Generator struct{}

// NewGenerator constructs a [Generator].
func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePassword returns a 6-character password drawn uniformly from
// [A-Za-z0-9]. No uniqueness is guaranteed; collisions between accounts are
// acceptable.
func (g *Generator) GeneratePassword() string {
	return randomString(passwordAlphabet, passwordLength)
}

// GenerateNumericID returns an 11-digit string for the legacy numeric id
// column. Uniqueness, if the game platform requires it, is enforced by the
// store schema, not here.
func (g *Generator) GenerateNumericID() string {
	return randomString(digitAlphabet, numericIDLength)
}

// randomString draws length characters uniformly and independently from
// alphabet using crypto/rand. Rejection sampling keeps the distribution
// uniform for alphabet sizes that do not divide 256.
func randomString(alphabet string, length int) string {
	// largest multiple of len(alphabet) representable in a byte
	limit := byte(256 - 256%len(alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		rand.Read(buf)
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
