// Command textcodec encodes and decodes text files with a Huffman or LZW
// codec.
//
// Usage:
//
//     textcodec [flags] encode INPUT OUTPUT
//     textcodec [flags] decode INPUT OUTPUT
//     textcodec [flags] roundtrip INPUT...
//
// The roundtrip command encodes each INPUT to INPUT.<codec>, decodes that to
// INPUT.<codec>.out, and checks that the result matches the input.  The exit
// status is 0 if every step succeeded and 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/dsnet/golib/unitconv"

	"github.com/chronos-tachyon/textcodec"
	"github.com/chronos-tachyon/textcodec/internal/textio"
	"github.com/chronos-tachyon/textcodec/lzw"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("textcodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	codecName := fs.String("codec", "huffman", "codec to use: huffman or lzw")
	encoding := fs.String("encoding", textio.DefaultEncoding, "text encoding of all files: UTF-8, UTF-16LE or UTF-16BE")
	dictSize := fs.String("dict-size", "", "LZW seed dictionary size, e.g. 256, 64Ki (default: every code point)")
	verbose := fs.Bool("v", false, "report each step")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: textcodec [flags] encode|decode INPUT OUTPUT\n")
		fmt.Fprintf(stderr, "       textcodec [flags] roundtrip INPUT...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "textcodec: ", 0)

	size := 0
	if *dictSize != "" {
		n, ok := parseDictSize(*dictSize)
		if !ok {
			logger.Printf("invalid -dict-size %q", *dictSize)
			return 2
		}
		size = n
	}

	codec, err := textcodec.LookupCodec(*codecName, size)
	if err != nil {
		logger.Print(err)
		return 2
	}
	fc := textcodec.FileCodec{Codec: codec, Encoding: *encoding, Logger: logger}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	cmd, files := rest[0], rest[1:]
	switch cmd {
	case "encode", "decode":
		if len(files) != 2 {
			fs.Usage()
			return 2
		}
		step := fc.Encode
		if cmd == "decode" {
			step = fc.Decode
		}
		if !step(files[0], files[1]) {
			fmt.Fprintf(stdout, "%s %s failed\n", codec.Name(), cmd)
			return 1
		}
		if *verbose {
			fmt.Fprintf(stdout, "%s %s ok: %s -> %s\n", codec.Name(), cmd, files[0], files[1])
		}
		return 0

	case "roundtrip":
		if len(files) == 0 {
			fs.Usage()
			return 2
		}
		status := 0
		for _, path := range files {
			if !roundTrip(fc, path, stdout, *verbose) {
				status = 1
			}
		}
		return status
	}

	fs.Usage()
	return 2
}

// roundTrip encodes path, decodes the artifact, and compares the result
// with the original content.
func roundTrip(fc textcodec.FileCodec, path string, stdout io.Writer, verbose bool) bool {
	name := fc.Codec.Name()
	encoded := path + "." + name
	decoded := encoded + ".out"

	if !fc.Encode(path, encoded) {
		fmt.Fprintf(stdout, "%s: %s encoding error\n", path, name)
		return false
	}
	if verbose {
		fmt.Fprintf(stdout, "%s: %s encoded\n", path, name)
	}

	if !fc.Decode(encoded, decoded) {
		fmt.Fprintf(stdout, "%s: %s decoding error\n", path, name)
		return false
	}
	if verbose {
		fmt.Fprintf(stdout, "%s: %s decoded\n", path, name)
	}

	original, err := textio.Read(path, fc.Encoding)
	if err != nil {
		fc.Logger.Print(err)
		return false
	}
	result, err := textio.Read(decoded, fc.Encoding)
	if err != nil {
		fc.Logger.Print(err)
		return false
	}
	if original != result {
		fmt.Fprintf(stdout, "%s: %s round trip mismatch\n", path, name)
		return false
	}

	fmt.Fprintf(stdout, "%s: %s ok, %s -> %s\n", path, name, fileSize(path), fileSize(encoded))
	return true
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "?"
	}
	return unitconv.FormatPrefix(float64(info.Size()), unitconv.Base1024, 2) + "B"
}

// parseDictSize accepts a whole number in 1 .. lzw.DefaultDictionarySize,
// optionally with a unit prefix ("256", "64Ki").
func parseDictSize(s string) (int, bool) {
	nf, err := unitconv.ParsePrefix(s, unitconv.AutoParse)
	if err != nil || nf < 1 || nf > lzw.DefaultDictionarySize || nf != math.Trunc(nf) {
		return 0, false
	}
	return int(nf), true
}
