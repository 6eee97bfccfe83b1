package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrMissingFields      = errors.New("please fill out all fields")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserNotFound       = errors.New("user not found")
	ErrBoxNotFound        = errors.New("box not found")
	ErrSaveInProgress     = errors.New("a save is already in progress for this box")
)
