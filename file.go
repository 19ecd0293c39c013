package textcodec

import (
	"fmt"
	"io"
	"log"

	"github.com/chronos-tachyon/textcodec/internal/textio"
)

// FileCodec runs a Codec over whole files.
type FileCodec struct {
	// Codec transforms the file content.
	Codec Codec

	// Encoding names the text encoding of both input and output files.
	// The empty string means UTF-8.
	Encoding string

	// Logger receives one line per failure.  Nil discards.
	Logger *log.Logger
}

// Encode reads inputPath, encodes its content, and writes the artifact to
// outputPath.  It returns false on any failure, after logging the error.
func (fc FileCodec) Encode(inputPath string, outputPath string) bool {
	return fc.report("encode", inputPath, outputPath, fc.EncodeFile(inputPath, outputPath))
}

// Decode reads the artifact at inputPath, decodes it, and writes the text
// to outputPath.  It returns false on any failure, after logging the error.
func (fc FileCodec) Decode(inputPath string, outputPath string) bool {
	return fc.report("decode", inputPath, outputPath, fc.DecodeFile(inputPath, outputPath))
}

// EncodeFile is like Encode, but returns the error.  On failure, outputPath
// is left untouched.
func (fc FileCodec) EncodeFile(inputPath string, outputPath string) error {
	return fc.transform(inputPath, outputPath, fc.Codec.Encode)
}

// DecodeFile is like Decode, but returns the error.  On failure, outputPath
// is left untouched.
func (fc FileCodec) DecodeFile(inputPath string, outputPath string) error {
	return fc.transform(inputPath, outputPath, fc.Codec.Decode)
}

func (fc FileCodec) transform(inputPath string, outputPath string, fn func(string) (string, error)) error {
	in, err := textio.Read(inputPath, fc.Encoding)
	if err != nil {
		return err
	}
	out, err := fn(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	return textio.Write(outputPath, out, fc.Encoding)
}

func (fc FileCodec) report(op string, inputPath string, outputPath string, err error) bool {
	if err == nil {
		return true
	}
	logger := fc.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	logger.Printf("%s %s %s -> %s: %v: %v", fc.Codec.Name(), op, inputPath, outputPath, KindOf(err), err)
	return false
}
