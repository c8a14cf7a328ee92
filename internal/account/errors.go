package account

import "errors"

// Domain errors. All of these are caller-recoverable conditions; anything
// else coming out of the service is an internal storage failure.
var (
	ErrDuplicateIdentifier = errors.New("account: identifier already registered")
	ErrDuplicateEmail      = errors.New("account: email already registered")
	ErrUserNotFound        = errors.New("account: user not found")

	// ErrNoCredentialSet means the account exists but has no stored password
	// hash. Kept distinct from ErrInvalidPassword so callers can tell a typo
	// from a misconfigured account.
	ErrNoCredentialSet = errors.New("account: no credential set")
	ErrInvalidPassword = errors.New("account: invalid password")
)
