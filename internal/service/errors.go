package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when registration input is
	// missing the email or the password.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any authentication failure.
	// It deliberately does not reveal whether the email was unknown or
	// the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
