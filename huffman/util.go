package huffman

import (
	mathbits "math/bits"
)

// log2int returns the number of bits needed to represent x, with a minimum
// of 1.  It is used to size traversal stacks, whose depth is about log2 of
// the node count for a reasonably balanced tree.
func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return 64 - mathbits.LeadingZeros64(uint64(x))
}
