package service

import "errors"

var (
	ErrNotFound         = errors.New("error not found")
	ErrInvalidInput     = errors.New("error invalid input")
	ErrResolverDisabled = errors.New("error stock resolver is disabled")
	ErrNoStocksResolved = errors.New("error no stocks resolved")
)

// InputError carries a user-facing message and matches ErrInvalidInput.
type InputError struct {
	Msg string
}

func NewInputError(msg string) *InputError {
	return &InputError{Msg: msg}
}

func (e *InputError) Error() string {
	return e.Msg
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
