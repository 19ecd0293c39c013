package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written first bit first as a string
// of '0' and '1' characters.
type Code string

// singleLeafCode is assigned to the only character of a one-symbol tree,
// whose root-to-leaf path would otherwise be empty.
const singleLeafCode = Code("0")

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// IsPrefixOf returns true iff hc is a proper or improper prefix of other.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// byCode sorts codes by (Size, lexical order), i.e. shorter codes first.
type byCode []Code

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
