package models

// NewAccount carries everything the store needs to provision a game account.
// Password holds the MD5 digest, never the plaintext. NumericID is the
// legacy 11-digit field stored in the accounts.qq column; the game platform
// expects it to be present but this system never reads it back.
type NewAccount struct {
	Identity  string
	Password  string
	NumericID string
	Cera      int
	CeraPoint int
}

// Account is the persisted account row as read back from the store.
// The IP/seal columns are sentinel fields kept at their zero values; the
// game server owns their semantics.
type Account struct {
	UID       int64
	Identity  string
	Password  string
	NumericID string
}

// Registration is the outcome of a successful registration. Password is the
// generated plaintext, surfaced exactly once in the reply to the user and
// never persisted.
type Registration struct {
	Identity  string
	Password  string
	Cera      int
	CeraPoint int
}
