package lzw

// Encode compresses text into an artifact of space-separated decimal codes.
// A dictionarySize of 0 selects DefaultDictionarySize.
func Encode(text string, dictionarySize int) (string, error) {
	if dictionarySize == 0 {
		dictionarySize = DefaultDictionarySize
	}
	e, err := NewEncoder(dictionarySize)
	if err != nil {
		return "", err
	}
	codes, err := e.Encode(text)
	if err != nil {
		return "", err
	}
	return FormatCodes(codes), nil
}

// Decode reverses Encode.  The dictionarySize must match the one used to
// encode; 0 selects DefaultDictionarySize.
func Decode(artifact string, dictionarySize int) (string, error) {
	if dictionarySize == 0 {
		dictionarySize = DefaultDictionarySize
	}
	d, err := NewDecoder(dictionarySize)
	if err != nil {
		return "", err
	}
	codes, err := ParseCodes(artifact)
	if err != nil {
		return "", err
	}
	return d.Decode(codes)
}

// Codec adapts Encode and Decode to a named codec value.
type Codec struct {
	// DictionarySize is the seed alphabet size; 0 means
	// DefaultDictionarySize.
	DictionarySize int
}

// Name returns "lzw".
func (Codec) Name() string {
	return "lzw"
}

// Encode calls the package-level Encode with c.DictionarySize.
func (c Codec) Encode(text string) (string, error) {
	return Encode(text, c.DictionarySize)
}

// Decode calls the package-level Decode with c.DictionarySize.
func (c Codec) Decode(artifact string) (string, error) {
	return Decode(artifact, c.DictionarySize)
}
