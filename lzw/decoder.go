package lzw

import (
	"fmt"
)

// Decoder implements an LZW decoder.  Like Encoder, it holds only
// configuration; each call to Decode regrows the dictionary from the codes.
type Decoder struct {
	size int
}

// NewDecoder returns a Decoder matching an Encoder with the same
// dictionarySize.
func NewDecoder(dictionarySize int) (*Decoder, error) {
	if err := checkDictionarySize(dictionarySize); err != nil {
		return nil, err
	}
	return &Decoder{size: dictionarySize}, nil
}

// DictionarySize returns the number of seed entries.
func (d *Decoder) DictionarySize() int {
	return d.size
}

// Decode reconstructs the text for a code sequence.
//
// The buffer starts as the string for the first code.  For each following
// code, character is its string if the code is known.  Otherwise the code
// must be the one about to be assigned: that entry is buffer plus the
// buffer's own first character, so it is registered now, the buffer is
// emitted, and character becomes the buffer's first character.  Then, if
// buffer plus character's first character is registered, the buffer is
// extended to it; otherwise that string is registered, the buffer is
// emitted, and the buffer becomes character.  The buffer is emitted at the
// end.
//
func (d *Decoder) Decode(codes []int) (string, error) {
	if len(codes) == 0 {
		return "", nil
	}

	// Before anything is grown, only seed codes are known.
	dict := newDecodeDictionary(d.size)
	if first := codes[0]; !dict.known(first) {
		return "", fmt.Errorf("%w: first code %d is not a seed code", ErrCorrupt, first)
	}

	var out []rune
	buffer := codes[0]
	for i := 1; i < len(codes); i++ {
		code := codes[i]

		var character int
		switch {
		case dict.known(code):
			character = code
		case code == dict.next:
			first := dict.first(buffer)
			dict.add(buffer, first)
			out = dict.appendString(out, buffer)
			character = int(first)
		default:
			return "", fmt.Errorf("%w: code %d at index %d is not yet assigned (next is %d)", ErrCorrupt, code, i, dict.next)
		}

		ch := dict.first(character)
		if next, found := dict.lookup(buffer, ch); found {
			buffer = next
			continue
		}
		dict.add(buffer, ch)
		out = dict.appendString(out, buffer)
		buffer = character
	}
	out = dict.appendString(out, buffer)
	return string(out), nil
}
