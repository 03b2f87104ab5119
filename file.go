package huffman

import (
	"os"

	"github.com/chronos-tachyon/texthuffman/internal/derrors"
)

// EncodeFile reads the whole of inPath, compresses it, and writes the
// artifact to outPath.
func EncodeFile(inPath, outPath string, f Format) (err error) {
	defer derrors.Wrap(&err, "EncodeFile(%q, %q)", inPath, outPath)

	text, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	artifact, err := Compress(text, f)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, artifact, 0o666)
}

// DecodeFile reads the artifact at inPath, decompresses it, and writes the
// original text to outPath.  Nothing is written if the artifact is invalid.
func DecodeFile(inPath, outPath string, f Format) (err error) {
	defer derrors.Wrap(&err, "DecodeFile(%q, %q)", inPath, outPath)

	artifact, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	text, err := Decompress(artifact, f)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, text, 0o666)
}
