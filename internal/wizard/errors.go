package wizard

import "errors"

var (
	ErrUnknownField   = errors.New("unknown answer field")
	ErrNotMultiSelect = errors.New("field is not multi-select")
	ErrInvalidNumber  = errors.New("must be a number")
	ErrNotPositive    = errors.New("must be greater than zero")
	ErrInvalidBool    = errors.New("must be yes or no")
	ErrInvalidOption  = errors.New("not one of the offered options")
	ErrIncomplete     = errors.New("questionnaire is incomplete")
)
