package domain

import "errors"

// Input errors. All of them are user-correctable; nothing is mutated when they are returned.
var (
	ErrMissingNumber = errors.New("please enter the phone number")
	ErrMissingUser   = errors.New("please enter your phone number")
	ErrInvalidNumber = errors.New("phone number contains invalid characters")
)
