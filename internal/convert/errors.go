package convert

import "fmt"

// Error is a conversion failure caused by malformed user input.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Message
}

func newError(op, format string, args ...interface{}) *Error {
	return &Error{Op: op, Message: fmt.Sprintf(format, args...)}
}
