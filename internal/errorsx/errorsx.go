// Package errorsx provides the error helpers shared across the module.
package errorsx

import "golang.org/x/xerrors"

// String turns string constants into errors that interopt with errors.Is and errors.As.
type String string

func (t String) Error() string {
	return string(t)
}

// Errorf formats an error, %w wraps the cause.
func Errorf(format string, args ...any) error {
	return xerrors.Errorf(format, args...)
}

// Wrap annotates err with msg, returns nil when err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}

	return xerrors.Errorf("%s: %w", msg, err)
}
