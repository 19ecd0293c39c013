package huffman

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Separator divides the code stream from the tree model in an artifact.
const Separator = ' '

// Encode compresses text into an artifact: the code stream, one Separator,
// then the tree model.  The empty text encodes to the empty artifact.  Text
// that is not valid UTF-8 is rejected with ErrUnknownSymbol.
func Encode(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	if !utf8.ValidString(text) {
		return "", errInvalidUTF8
	}

	var e Encoder
	if err := e.Init(Analyze(text)); err != nil {
		return "", err
	}

	stream, err := e.EncodeText(text)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.Grow(len(stream) + 1 + len(e.Model()))
	buf.WriteString(stream)
	buf.WriteByte(Separator)
	buf.WriteString(e.Model())
	return buf.String(), nil
}

// Decode reverses Encode.  The artifact is split on its first Separator;
// code streams never contain one, so a Separator inside the model (as a leaf
// character) is harmless.
func Decode(artifact string) (string, error) {
	if artifact == "" {
		return "", nil
	}

	i := strings.IndexByte(artifact, Separator)
	if i < 0 {
		return "", fmt.Errorf("%w: artifact has no separator", ErrCorrupt)
	}
	stream, model := artifact[:i], artifact[i+1:]

	var d Decoder
	if err := d.Init(model); err != nil {
		return "", err
	}
	return d.DecodeText(stream)
}

// Codec adapts Encode and Decode to a named codec value.
type Codec struct{}

// Name returns "huffman".
func (Codec) Name() string {
	return "huffman"
}

// Encode calls the package-level Encode.
func (Codec) Encode(text string) (string, error) {
	return Encode(text)
}

// Decode calls the package-level Decode.
func (Codec) Decode(artifact string) (string, error) {
	return Decode(artifact)
}
