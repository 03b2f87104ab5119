package huffman

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/texthuffman/internal/derrors"
)

// Format selects how the payload of an artifact is represented.  The header
// is the same for every Format.
type Format uint8

const (
	// FormatText writes one '0' or '1' byte per bit.
	FormatText Format = iota

	// FormatPacked writes eight bits per byte.  See PackBits.
	FormatPacked
)

// String returns the name of the Format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatPacked:
		return "packed"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// headerSeparator separates the header from the payload in an artifact.
const headerSeparator = '\n'

// Compress encodes text and lays it out as an artifact: the header, a
// single '\n', and the payload in the given Format.
func Compress(text []byte, f Format) (_ []byte, err error) {
	defer derrors.Wrap(&err, "Compress(%v)", f)

	header, payload := Encode(text)

	var body []byte
	switch f {
	case FormatText:
		body = []byte(payload)
	case FormatPacked:
		body, err = PackBits(payload)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %v", derrors.InvalidArgument, f)
	}

	out := make([]byte, 0, len(header)+1+len(body))
	out = append(out, header...)
	out = append(out, headerSeparator)
	out = append(out, body...)
	return out, nil
}

// Decompress is the inverse of Compress.  The header ends at the first
// '\n'; everything after it is the payload.
func Decompress(artifact []byte, f Format) (_ []byte, err error) {
	defer derrors.Wrap(&err, "Decompress(%v)", f)

	i := bytes.IndexByte(artifact, headerSeparator)
	if i < 0 {
		return nil, fmt.Errorf("%w: missing header separator", derrors.MalformedHeader)
	}
	header, body := string(artifact[:i]), artifact[i+1:]

	var payload string
	switch f {
	case FormatText:
		payload = string(body)
	case FormatPacked:
		payload, err = UnpackBits(body)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %v", derrors.InvalidArgument, f)
	}

	return Decode(header, payload)
}
