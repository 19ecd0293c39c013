package huffman

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrNoSymbols is returned when a tree is requested over zero symbols.
	ErrNoSymbols error = Error("cannot build a tree with no symbols")

	// ErrUnknownSymbol is returned when encoding a character that has no
	// assigned code.
	ErrUnknownSymbol error = Error("character has no code")

	// ErrCorrupt is returned when a model, code stream or artifact is
	// malformed.
	ErrCorrupt error = Error("input is corrupted")
)
