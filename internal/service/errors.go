package service

import "errors"

var (
	// ErrAlreadyRegistered is the terminal outcome of a registration attempt
	// for an identity that already owns an account. Not a failure: nothing
	// was changed and nothing needs rolling back.
	ErrAlreadyRegistered = errors.New("identity already owns an account")

	// ErrInvalidIdentity is returned when the chat transport hands over an
	// empty sender identity.
	ErrInvalidIdentity = errors.New("empty identity provided")

	// ErrPasswordLength is returned when a candidate password is shorter
	// than 3 or longer than 16 characters after normalization.
	ErrPasswordLength = errors.New("password must be 3-16 characters")

	// ErrPasswordCharset is returned when a candidate password of valid
	// length contains characters outside [A-Za-z0-9].
	ErrPasswordCharset = errors.New("password must contain only letters and digits")

	// ErrAccountNotFound is returned when a password change targets an
	// identity with no account. Mapped from the store's zero-rows-affected
	// result; deliberately not a store error.
	ErrAccountNotFound = errors.New("account does not exist")
)
