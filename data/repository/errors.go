package repository

import "errors"

var (
	ErrAlreadyExists = errors.New("error already exists")
	ErrNotFound      = errors.New("error not found")
	// ErrCorrupted is returned when the stored document cannot be decoded.
	ErrCorrupted = errors.New("error corrupted storage")
)
