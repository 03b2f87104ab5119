// Package derrors defines internal error values to categorize the different
// types of error semantics the codec supports.
package derrors

import (
	"errors"
	"fmt"
)

//lint:file-ignore ST1012 prefixing error values with Err would stutter

var (
	// InvalidArgument indicates that the input into the request is invalid in
	// some way.
	InvalidArgument = errors.New("invalid argument")

	// MalformedHeader indicates that a frequency header could not be parsed:
	// an odd number of tokens, a non-numeric token, or a character code
	// outside the alphabet.
	MalformedHeader = errors.New("malformed header")

	// CodeTableMismatch indicates that a payload does not agree with the
	// tree rebuilt from its header, e.g. it ends in the middle of a code.
	CodeTableMismatch = errors.New("code table mismatch")
)

// Wrap adds context to the error and allows
// unwrapping the result to recover the original error.
//
// Example:
//
//	defer derrors.Wrap(&err, "copy(%s, %s)", dst, src)
func Wrap(errp *error, format string, args ...interface{}) {
	if *errp != nil {
		*errp = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), *errp)
	}
}
