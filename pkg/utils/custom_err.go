package utils

import "errors"

var (
	ErrCarNotFound          = errors.New("car not found")
	ErrCheckNotFound        = errors.New("check not found")
	ErrHistoryEntryNotFound = errors.New("check history item not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
)
