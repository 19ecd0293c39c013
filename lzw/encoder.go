package lzw

import (
	"fmt"
	"unicode/utf8"
)

// Encoder implements an LZW encoder.  An Encoder holds only configuration;
// each call to Encode grows its own dictionary.
type Encoder struct {
	size int
}

// NewEncoder returns an Encoder whose seed alphabet is the code points
// 0 .. dictionarySize-1.
func NewEncoder(dictionarySize int) (*Encoder, error) {
	if err := checkDictionarySize(dictionarySize); err != nil {
		return nil, err
	}
	return &Encoder{size: dictionarySize}, nil
}

// DictionarySize returns the number of seed entries.
func (e *Encoder) DictionarySize() int {
	return e.size
}

// Encode returns the code sequence for text.
//
// A buffer string starts as the first character.  For each following
// character c, if buffer+c is already in the dictionary the buffer is
// extended; otherwise buffer+c receives the next code, the code for the
// buffer is emitted, and the buffer restarts at c.  The buffer's code is
// emitted at the end.  The empty text yields no codes; text that is not
// valid UTF-8 is rejected with ErrUnknownSymbol.
//
func (e *Encoder) Encode(text string) ([]int, error) {
	if text == "" {
		return nil, nil
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrUnknownSymbol)
	}

	dict := newDictionary(e.size)
	var codes []int
	buffer := -1
	for pos, ch := range text {
		single, ok := dict.seed(ch)
		if !ok {
			return nil, fmt.Errorf("%w: %q at byte offset %d, dictionary size %d", ErrUnknownSymbol, ch, pos, e.size)
		}

		if buffer < 0 {
			buffer = single
			continue
		}

		if code, found := dict.lookup(buffer, ch); found {
			buffer = code
			continue
		}

		dict.add(buffer, ch)
		codes = append(codes, buffer)
		buffer = single
	}
	codes = append(codes, buffer)
	return codes, nil
}
