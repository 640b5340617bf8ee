package user

import "errors"

var (
	// ErrUserNotFound signals that no account exists for the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken signals a registration attempt with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials signals a sign-in attempt with a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
