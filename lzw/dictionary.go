package lzw

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// DefaultDictionarySize seeds the dictionary with every Unicode code point.
const DefaultDictionarySize = unicode.MaxRune + 1

func checkDictionarySize(size int) error {
	if size < 1 || size > DefaultDictionarySize {
		return fmt.Errorf("%w: %d not in 1 .. %d", ErrDictionarySize, size, DefaultDictionarySize)
	}
	return nil
}

// entryKey names a multi-character string as (code of all but the last
// character, last character).
type entryKey struct {
	prefix int
	last   rune
}

// dictionary maps strings to codes.
//
// Seed entries are implicit: a single character ch with ch < size has code
// int(ch).  Only grown entries, which always hold two or more characters,
// are stored.  New codes are assigned sequentially starting at size.
//
type dictionary struct {
	size  int
	next  int
	codes map[entryKey]int
}

func newDictionary(size int) dictionary {
	return dictionary{
		size:  size,
		next:  size,
		codes: make(map[entryKey]int),
	}
}

// seed returns the code of the single-character string ch.
func (d *dictionary) seed(ch rune) (int, bool) {
	if ch < 0 || int(ch) >= d.size {
		return 0, false
	}
	return int(ch), true
}

// lookup returns the code of (string for prefix) + ch.
func (d *dictionary) lookup(prefix int, ch rune) (int, bool) {
	code, found := d.codes[entryKey{prefix, ch}]
	return code, found
}

// add assigns the next unused code to (string for prefix) + ch.
func (d *dictionary) add(prefix int, ch rune) int {
	code := d.next
	d.codes[entryKey{prefix, ch}] = code
	d.next++
	return code
}

type entry struct {
	prefix int
	last   rune
	first  rune
	length int
}

// decodeDictionary additionally maps codes back to strings.
type decodeDictionary struct {
	dictionary
	entries []entry
}

func newDecodeDictionary(size int) decodeDictionary {
	return decodeDictionary{dictionary: newDictionary(size)}
}

// known returns true iff code names a string.  Seed codes for surrogate
// halves name nothing, since those are not characters.
func (d *decodeDictionary) known(code int) bool {
	if code < 0 {
		return false
	}
	if code < d.size {
		return utf8.ValidRune(rune(code))
	}
	return code < d.next
}

func (d *decodeDictionary) add(prefix int, ch rune) int {
	code := d.dictionary.add(prefix, ch)
	d.entries = append(d.entries, entry{
		prefix: prefix,
		last:   ch,
		first:  d.first(prefix),
		length: d.length(prefix) + 1,
	})
	return code
}

func (d *decodeDictionary) first(code int) rune {
	if code < d.size {
		return rune(code)
	}
	return d.grown(code).first
}

func (d *decodeDictionary) length(code int) int {
	if code < d.size {
		return 1
	}
	return d.grown(code).length
}

func (d *decodeDictionary) grown(code int) *entry {
	index := code - d.size
	assert.Assertf(index >= 0 && index < len(d.entries), "code %d not in %d .. %d", code, d.size, d.next-1)
	return &d.entries[index]
}

// appendString appends the string for code to dst.
func (d *decodeDictionary) appendString(dst []rune, code int) []rune {
	n := d.length(code)
	start := len(dst)
	dst = append(dst, make([]rune, n)...)
	for i := start + n - 1; code >= d.size; i-- {
		e := d.grown(code)
		dst[i] = e.last
		code = e.prefix
	}
	dst[start] = rune(code)
	return dst
}
