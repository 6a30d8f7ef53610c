package domain

import "fmt"

// LogicError reports a violated engine contract, such as comparing cards
// without a trump context or playing twice to one trick. It is raised by
// panic and is not meant to be recovered from.
type LogicError struct {
	Msg string
}

func (e *LogicError) Error() string { return e.Msg }

func logicErrf(format string, args ...any) *LogicError {
	return &LogicError{Msg: fmt.Sprintf(format, args...)}
}

// LogicErrf builds a LogicError for panicking callers outside the package.
func LogicErrf(format string, args ...any) *LogicError {
	return logicErrf(format, args...)
}

// ImplementationError reports malformed output from a strategy, such as a
// bid for a suit that is not biddable. Raised by panic, same as LogicError.
type ImplementationError struct {
	Msg string
}

func (e *ImplementationError) Error() string { return e.Msg }

// ImplErrf builds an ImplementationError for panicking callers.
func ImplErrf(format string, args ...any) *ImplementationError {
	return &ImplementationError{Msg: fmt.Sprintf(format, args...)}
}
