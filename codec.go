// Package textcodec drives lossless text codecs over whole files.
//
// The codecs themselves live in the huffman and lzw subpackages.  This
// package adds the file boundary: FileCodec reads a file in a named text
// encoding, runs a Codec over its content, and writes the result, reporting
// only success or failure to its caller.  The underlying error, classified
// by KindOf, is logged.
//
package textcodec

import (
	"fmt"

	"github.com/chronos-tachyon/textcodec/huffman"
	"github.com/chronos-tachyon/textcodec/lzw"
)

// Codec is a reversible transformation of whole-text content.
type Codec interface {
	Name() string
	Encode(text string) (string, error)
	Decode(artifact string) (string, error)
}

var (
	_ Codec = huffman.Codec{}
	_ Codec = lzw.Codec{}
)

// LookupCodec returns the codec with the given name.  The dictionarySize is
// used by "lzw" only; 0 selects lzw.DefaultDictionarySize.
func LookupCodec(name string, dictionarySize int) (Codec, error) {
	switch name {
	case "huffman":
		return huffman.Codec{}, nil
	case "lzw":
		return lzw.Codec{DictionarySize: dictionarySize}, nil
	}
	return nil, fmt.Errorf("textcodec: unknown codec %q", name)
}
