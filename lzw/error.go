package lzw

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

var (
	// ErrDictionarySize is returned for a dictionary size outside
	// 1 .. DefaultDictionarySize.
	ErrDictionarySize error = Error("invalid dictionary size")

	// ErrUnknownSymbol is returned when encoding a character outside the
	// seed alphabet.
	ErrUnknownSymbol error = Error("character outside the alphabet")

	// ErrCorrupt is returned when a code stream is malformed or refers to a
	// code that has not been assigned.
	ErrCorrupt error = Error("code stream is corrupted")
)
