// Package textio reads and writes whole text files in a named character
// encoding.  Writes replace the target atomically.
package textio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "textio: " + string(e) }

var (
	// ErrUnknownEncoding is returned for an encoding name that is not
	// supported.
	ErrUnknownEncoding error = Error("unknown encoding")

	// ErrEncoding is returned when file content is not valid in the
	// requested encoding, or text cannot be represented in it.
	ErrEncoding error = Error("invalid encoded text")
)

// DefaultEncoding is used when an empty encoding name is given.
const DefaultEncoding = "UTF-8"

// LookupEncoding resolves an IANA character set name or alias, such as
// "UTF-8", "UTF-16LE" or "ISO-8859-1".  Names are case-insensitive.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownEncoding, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// decode converts raw file content into text.  Decoders substitute U+FFFD
// for invalid input, so the result must encode back to exactly raw.
func decode(enc encoding.Encoding, raw []byte) (string, error) {
	text, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	back, err := enc.NewEncoder().Bytes(text)
	if err != nil || !bytes.Equal(back, raw) {
		return "", fmt.Errorf("%w: content is not valid in this encoding", ErrEncoding)
	}
	return string(text), nil
}

// encode converts text into raw file content.  The text must be valid
// UTF-8, and every character must be representable in enc.
func encode(enc encoding.Encoding, text string) ([]byte, error) {
	t := transform.Chain(encoding.UTF8Validator, enc.NewEncoder())
	raw, _, err := transform.Bytes(t, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return raw, nil
}

// Read returns the whole content of the named file decoded as text.
func Read(path string, encodingName string) (string, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := decode(enc, raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// Write replaces the named file with content.  The content is written to a
// temporary file in the same directory and renamed into place, so the file
// is either left untouched or completely rewritten.
func Write(path string, content string, encodingName string) (err error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return err
	}
	raw, err := encode(enc, content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(raw); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
