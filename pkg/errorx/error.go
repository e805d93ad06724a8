package errorx

import (
	"errors"
	"fmt"
)

// Error is an error which is safe to show to the end user. Its message never
// contains internal details, those must be logged instead.
type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether target is an Error with the same code. It makes
// errors.Is(err, errorx.Error{Code: ...}) work regardless of the message.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

// Is reports whether any error in err's chain is an Error with the given code.
func Is(err error, code Code) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Code == code
}

// CodeOf returns the code of the first Error in err's chain, or Internal.
func CodeOf(err error) Code {
	var e Error
	if !errors.As(err, &e) {
		return Internal
	}

	return e.Code
}
