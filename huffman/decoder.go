package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Decoder implements a decoder for Huffman codes described by a serialized
// tree model.
type Decoder struct {
	table   map[Code]rune
	model   string
	minSize int
	maxSize int
}

// Init initializes this Decoder from a model string as produced by
// Encoder.Model.  The model is walked in pre-order with an explicit stack,
// recovering the Code of every leaf without rebuilding the tree.
//
// The empty model is permitted and yields a Decoder with no codes, which can
// only decode the empty code stream.  Any other model must describe exactly
// one complete tree with distinct leaf characters.
//
func (d *Decoder) Init(model string) error {
	if model == "" {
		*d = Decoder{}
		return nil
	}

	table, err := parseModel([]rune(model))
	if err != nil {
		return err
	}

	var minSize, maxSize int
	var hasMinMax bool
	for hc := range table {
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
	}

	*d = Decoder{
		table:   table,
		model:   model,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Decode looks up a Code.  The second result is false if hc is not the code
// of any character.
func (d Decoder) Decode(hc Code) (rune, bool) {
	ch, found := d.table[hc]
	return ch, found
}

// DecodeText decodes a code stream.  Bits are accumulated until they match a
// known Code, at which point the matching character is emitted and the
// accumulator is reset.  The code set is prefix-free, so this is unambiguous.
//
// It is an error for the stream to contain anything other than '0' and '1',
// for the accumulator to grow past the longest known Code, or for the stream
// to end with a partial Code.
//
func (d Decoder) DecodeText(stream string) (string, error) {
	var out strings.Builder
	pending := make([]byte, 0, d.maxSize)
	for pos := 0; pos < len(stream); pos++ {
		bit := stream[pos]
		if bit != '0' && bit != '1' {
			return "", fmt.Errorf("%w: invalid bit %q at offset %d", ErrCorrupt, bit, pos)
		}

		pending = append(pending, bit)
		if ch, found := d.table[Code(pending)]; found {
			out.WriteRune(ch)
			pending = pending[:0]
			continue
		}
		if len(pending) >= d.maxSize {
			return "", fmt.Errorf("%w: no code matches %q at offset %d", ErrCorrupt, pending, pos)
		}
	}
	if len(pending) != 0 {
		return "", fmt.Errorf("%w: code stream ends inside a code (%q)", ErrCorrupt, pending)
	}
	return out.String(), nil
}

// Model returns the model this Decoder was initialized with.
func (d Decoder) Model() string {
	return d.model
}

// Len returns the number of known codes.
func (d Decoder) Len() int {
	return len(d.table)
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	return d.maxSize
}

// String returns a short human-readable description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", len(d.table), d.minSize, d.maxSize)
}

// GoString returns a Go expression that recreates this Decoder.
func (d Decoder) GoString() string {
	return fmt.Sprintf("NewDecoder(%q)", d.model)
}

// NewDecoder is a convenience function that constructs and initializes a
// Decoder.
func NewDecoder(model string) (Decoder, error) {
	var d Decoder
	err := d.Init(model)
	return d, err
}

// MarshalJSON encodes this Decoder as its model string.
func (d Decoder) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.model)
}

// UnmarshalJSON decodes a model string and initializes this Decoder with it.
func (d *Decoder) UnmarshalJSON(raw []byte) error {
	var model string
	if err := json.Unmarshal(raw, &model); err != nil {
		return err
	}
	return d.Init(model)
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	sort.Sort(keys)
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %q\n", hc, d.table[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var (
	_ fmt.Stringer     = Decoder{}
	_ fmt.GoStringer   = Decoder{}
	_ json.Marshaler   = Decoder{}
	_ json.Unmarshaler = (*Decoder)(nil)
)

var errTruncatedModel = fmt.Errorf("%w: model ends before the tree is complete", ErrCorrupt)

// parseModel walks a non-empty serialized model and returns the code of
// every leaf.
func parseModel(model []rune) (map[Code]rune, error) {
	table := make(map[Code]rune)
	seen := make(map[rune]struct{})
	pos := 0

	// readNode consumes one marker, plus the literal character if the
	// marker introduces a leaf.
	readNode := func() (isLeaf bool, ch rune, err error) {
		if pos >= len(model) {
			return false, 0, errTruncatedModel
		}
		marker := model[pos]
		pos++
		switch marker {
		case '0':
			return false, 0, nil
		case '1':
			if pos >= len(model) {
				return false, 0, errTruncatedModel
			}
			ch = model[pos]
			pos++
			return true, ch, nil
		default:
			return false, 0, fmt.Errorf("%w: invalid marker %q at model offset %d", ErrCorrupt, marker, pos-1)
		}
	}

	addLeaf := func(path []byte, ch rune) error {
		if _, dupe := seen[ch]; dupe {
			return fmt.Errorf("%w: character %q appears twice in model", ErrCorrupt, ch)
		}
		seen[ch] = struct{}{}

		hc := Code(path)
		if hc == "" {
			hc = singleLeafCode
		}
		table[hc] = ch
		return nil
	}

	// Each internal node on the stack moves through three states:
	//   x=0 → unvisited; the left child is read next
	//   x=1 → left-done; the right child is read next
	//   x=2 → both-done; the node is popped
	//
	// As in tree.walk, len(path) == len(stack)-1 at the top of each
	// iteration.

	type stackItem struct {
		x byte
	}

	stack := make([]stackItem, 0, log2int(len(model)))
	path := make([]byte, 0, log2int(len(model)))

	processChild := func(bit byte) error {
		path = append(path, bit)
		isLeaf, ch, err := readNode()
		if err != nil {
			return err
		}
		if !isLeaf {
			stack = append(stack, stackItem{})
			return nil
		}
		err = addLeaf(path, ch)
		path = path[:len(path)-1]
		return err
	}

	isLeaf, ch, err := readNode()
	if err != nil {
		return nil, err
	}
	if isLeaf {
		if err := addLeaf(path, ch); err != nil {
			return nil, err
		}
	} else {
		stack = append(stack, stackItem{})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			err = processChild('0')
		case 1:
			err = processChild('1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if pos != len(model) {
		return nil, fmt.Errorf("%w: %d trailing characters after model", ErrCorrupt, len(model)-pos)
	}
	return table, nil
}
