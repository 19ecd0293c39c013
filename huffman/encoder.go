package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Encoder implements an encoder for Huffman codes built from a text's own
// character frequencies.
type Encoder struct {
	codes   map[rune]Code
	model   string
	minSize int
	maxSize int
}

// Init initializes this Encoder from a list of Symbols, normally the output
// of Analyze.  The list must not be empty, and each character should appear
// at most once.
//
// Init builds the Huffman tree, assigns a Code to each leaf by walking the
// tree ('0' for each left edge, '1' for each right edge), and serializes the
// tree into a model string that a Decoder can use to recover the same codes.
//
func (e *Encoder) Init(symbols []Symbol) error {
	t, err := buildTree(symbols)
	if err != nil {
		return err
	}

	codes := make(map[rune]Code, len(symbols))
	var model strings.Builder
	var minSize, maxSize int
	var hasMinMax bool

	t.walk(func(n *node, path []byte) {
		if !n.isLeaf() {
			model.WriteByte('0')
			return
		}

		model.WriteByte('1')
		model.WriteRune(n.char)

		hc := Code(path)
		if hc == "" {
			hc = singleLeafCode
		}
		codes[n.char] = hc

		size := hc.Size()
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	})

	*e = Encoder{
		codes:   codes,
		model:   model.String(),
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Encode returns the Code for a character.  The second result is false if
// the character was not among the Symbols given to Init.
func (e Encoder) Encode(ch rune) (Code, bool) {
	hc, found := e.codes[ch]
	return hc, found
}

var errInvalidUTF8 = fmt.Errorf("%w: text is not valid UTF-8", ErrUnknownSymbol)

// EncodeText concatenates the Code of every character in text.
func (e Encoder) EncodeText(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", errInvalidUTF8
	}

	var buf strings.Builder
	for pos, ch := range text {
		hc, found := e.codes[ch]
		if !found {
			return "", fmt.Errorf("%w: %q at byte offset %d", ErrUnknownSymbol, ch, pos)
		}
		buf.WriteString(string(hc))
	}
	return buf.String(), nil
}

// Model returns the pre-order serialization of the tree.
func (e Encoder) Model() string {
	return e.model
}

// Len returns the number of characters with an assigned Code.
func (e Encoder) Len() int {
	return len(e.codes)
}

// MinSize is the bit length of the shortest assigned code.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Characters are listed in code order.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	inverse := make(map[Code]rune, len(e.codes))
	keys := make(byCode, 0, len(e.codes))
	for ch, hc := range e.codes {
		inverse[hc] = ch
		keys = append(keys, hc)
	}
	sort.Sort(keys)

	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	fmt.Fprintf(&buf, "\tModel() = %q\n", e.model)
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", inverse[hc], hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
