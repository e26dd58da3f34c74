package credential

import (
	"crypto/md5"
	"encoding/hex"
)

// Hasher computes the password digest stored in the accounts table.
//
// The game server compares login passwords against an unsalted MD5 hex
// digest, so MD5 is a schema compatibility requirement here, not a
// cryptographic choice.
type Hasher struct{}

// NewHasher constructs a [Hasher].
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest returns the lowercase hex MD5 digest of the UTF-8 bytes of text.
// Deterministic: equal inputs always produce equal digests.
func (h *Hasher) Digest(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
