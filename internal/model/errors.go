package model

import "errors"

var (
	// ErrNotFound indicates a missing document.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken indicates a registration attempt with an existing email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used for user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
