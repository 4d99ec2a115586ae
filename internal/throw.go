package internal

import "github.com/pkg/errors"

var ErrEmptySoup = errors.New("triangle soup is empty")

// Parsing mesh files is deeply nested, and threading errors through all of it
// adds a lot of noise. Instead, parsers panic with a SoupError and the public
// entry points recover to convert it back into an error.
//
// SoupError is a distinct type so that runtime panics, which are also errors,
// are never mistaken for parse failures.
type SoupError struct {
	err error
}

func (e SoupError) Error() string { return e.err.Error() }
func (e SoupError) Unwrap() error { return e.err }

// Panic with a SoupError.
func fatalf(format string, args ...interface{}) {
	panic(SoupError{errors.Errorf(format, args...)})
}

// Convert a recovered SoupError into an error. Any other panic is a real bug
// and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if soupError, ok := r.(SoupError); ok {
			return soupError.err
		}
		panic(r)
	}
	return nil
}
