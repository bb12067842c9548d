package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrValidation    = errors.New("validation failed")
	ErrEmptyUsername = fmt.Errorf("%w: username is required", ErrValidation)
	ErrEmptyPassword = fmt.Errorf("%w: password is required", ErrValidation)
)
