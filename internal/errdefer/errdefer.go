// Package errdefer runs cleanup operations in defer statements
// without losing the errors they return.
package errdefer

import (
	"errors"
	"io"
)

// Close calls Close on the given Closer,
// and joins any error returned with the given error.
//
// Use it inside a defer statement with a named return.
// This matters for files opened for writing:
// a failed Close may mean the data never reached disk.
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}
