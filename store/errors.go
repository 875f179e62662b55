package store

import "errors"

// Failure taxonomy shared by the catalog and cart stores. Callers branch with
// errors.Is; anything not matching these sentinels is a store-level failure
// (connectivity, constraint violation, ...) and must not leak past a generic
// message.
var (
	ErrNotFound        = errors.New("record not found")
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrValidation      = errors.New("invalid input")
)
