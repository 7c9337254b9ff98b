package errors

import "fmt"

// Wrap prefixes err with msg, keeping it matchable with errors.Is.
// A nil err stays nil so callers can wrap unconditionally:
//
//	return errors.Wrap(f.Close(), "failed to close key file")
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
