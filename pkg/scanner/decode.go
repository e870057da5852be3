package scanner

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrBinaryFile is returned by Decode for content that is not text.
var ErrBinaryFile = errors.New("binary file")

// sniffLen is how much of the content is checked for NUL bytes.
const sniffLen = 8192

// Decode decodes content as UTF-8 and returns its characters.
// Content that is not valid UTF-8, or has a NUL byte in its first 8KB,
// is reported as ErrBinaryFile.
func Decode(content []byte) ([]rune, error) {
	if hasNUL(content) {
		return nil, fmt.Errorf("%w: contains NUL bytes", ErrBinaryFile)
	}
	valid, _, err := transform.Bytes(encoding.UTF8Validator, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBinaryFile, err)
	}
	return bytes.Runes(valid), nil
}

func hasNUL(content []byte) bool {
	checkSize := len(content)
	if checkSize > sniffLen {
		checkSize = sniffLen
	}
	return bytes.IndexByte(content[:checkSize], 0) != -1
}

// describeBinary names the kind of binary content, or "unknown".
func describeBinary(content []byte) string {
	kind, _ := filetype.Match(content)
	if kind == filetype.Unknown {
		return "unknown"
	}
	return kind.MIME.Value
}
