package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidState        = errors.New("invalid state transition")
	ErrPinNotSet           = errors.New("pin not set")
	ErrInvalidPin          = errors.New("invalid pin")
	ErrValidation          = errors.New("validation failed")
)
