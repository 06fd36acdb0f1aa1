package datatables

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid options input")
	// ErrUnknownOption is matched by every *UnknownOptionError.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidRequest is returned when a server-side request or the
	// processor set up to answer it is unusable.
	ErrInvalidRequest = errors.New("invalid request")
)

// InvalidInputError reports options input of an unsupported shape. When Key
// is set, the input was well formed but the value for Key could not be
// converted to the option's type.
type InvalidInputError struct {
	Key string
	Got string
	Err error
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid value of type %s for option %q: %v", e.Got, e.Key, e.Err)
	}
	return fmt.Sprintf("expected a mapping or a sequence of key/value pairs; received %s", e.Got)
}

// Is matches ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Unwrap returns the conversion error, if any.
func (e *InvalidInputError) Unwrap() error { return e.Err }

// UnknownOptionError reports an input key no option is registered for.
type UnknownOptionError struct {
	Key string
}

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("no setter available for option %q", e.Key)
}

// Is matches ErrUnknownOption.
func (e *UnknownOptionError) Is(target error) bool { return target == ErrUnknownOption }

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
