package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrNoBoard         = errors.New("no board in session")
	ErrInvalidToken    = errors.New("invalid session token")

	// Input errors
	ErrInvalidScore     = errors.New("score must be a non-negative integer")
	ErrInvalidBoardSize = errors.New("invalid board size")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
