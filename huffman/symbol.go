package huffman

// Symbol represents one distinct character of a text, together with the
// number of times it occurs.
type Symbol struct {
	Char  rune
	Count uint64
}

// Analyze counts the occurrences of each character in text.  Symbols are
// returned in order of first appearance, which makes tree construction
// deterministic for a given text.  Analyze never fails; the empty text yields
// an empty list.
func Analyze(text string) []Symbol {
	var symbols []Symbol
	index := make(map[rune]int)
	for _, ch := range text {
		if i, found := index[ch]; found {
			symbols[i].Count++
			continue
		}
		index[ch] = len(symbols)
		symbols = append(symbols, Symbol{Char: ch, Count: 1})
	}
	return symbols
}
