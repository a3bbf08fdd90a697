package errors

import (
	"errors"
	"fmt"
)

// Codes attached to wrapped errors so callers can tell failure classes apart
// without matching on messages.
const (
	CodeGraphRequest  = "graph_request"
	CodeGraphResponse = "graph_response"
	CodeParse         = "parse"
	CodeWriteFile     = "write_file"
	CodeLedger        = "ledger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrAborted      = errors.New("aborted by operator")
)

// Error carries a machine readable code next to the message.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetCode returns the outermost error code in the chain, if any.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether any error in the chain carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
