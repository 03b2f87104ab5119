package huffman

import (
	"github.com/chronos-tachyon/texthuffman/internal/derrors"
)

// Errors returned by this package can be tested against these values with
// errors.Is.
var (
	// ErrMalformedHeader is reported by ParseHeader, and by anything that
	// parses a header, for input that is not a valid frequency header.
	ErrMalformedHeader = derrors.MalformedHeader

	// ErrCodeTableMismatch is reported when a payload cannot have been
	// produced from the tree described by its header: it contains a byte
	// other than '0' or '1', it stops in the middle of a code, or it
	// decodes to a different number of characters than the header counts.
	ErrCodeTableMismatch = derrors.CodeTableMismatch

	// ErrInvalidArgument is reported for arguments that are invalid in some
	// other way, such as an unknown Format.
	ErrInvalidArgument = derrors.InvalidArgument
)
