package textcodec

import (
	"errors"
	"io/fs"
	"os"

	"github.com/chronos-tachyon/textcodec/huffman"
	"github.com/chronos-tachyon/textcodec/internal/textio"
	"github.com/chronos-tachyon/textcodec/lzw"
)

// Kind classifies why an operation failed.
type Kind uint8

const (
	// KindNone means there was no error.
	KindNone Kind = iota

	// KindIO covers missing files, permissions and other file system
	// failures.
	KindIO

	// KindEncoding covers file content that is not valid in the requested
	// text encoding, and unknown encoding names.
	KindEncoding

	// KindMalformed covers artifacts that cannot be decoded.
	KindMalformed

	// KindPrecondition covers inputs the codec cannot accept, such as a
	// character outside the LZW alphabet or an invalid dictionary size.
	KindPrecondition

	// KindUnknown covers everything else.
	KindUnknown
)

var kindNames = [...]string{
	KindNone:         "none",
	KindIO:           "I/O error",
	KindEncoding:     "encoding error",
	KindMalformed:    "malformed input",
	KindPrecondition: "precondition failed",
	KindUnknown:      "unknown error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// KindOf classifies err.
func KindOf(err error) Kind {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, textio.ErrEncoding), errors.Is(err, textio.ErrUnknownEncoding):
		return KindEncoding
	case errors.Is(err, huffman.ErrCorrupt), errors.Is(err, lzw.ErrCorrupt):
		return KindMalformed
	case errors.Is(err, huffman.ErrNoSymbols),
		errors.Is(err, huffman.ErrUnknownSymbol),
		errors.Is(err, lzw.ErrUnknownSymbol),
		errors.Is(err, lzw.ErrDictionarySize):
		return KindPrecondition
	case errors.As(err, &pathErr), errors.As(err, &linkErr):
		return KindIO
	}
	return KindUnknown
}
