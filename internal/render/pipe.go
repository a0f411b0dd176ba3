package render

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err is the result of writing to a
// closed downstream pipe, as happens when output is piped into a
// command such as head that exits early. Callers treat this as a
// signal to stop writing, not as a failure.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
