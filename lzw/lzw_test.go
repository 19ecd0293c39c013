package lzw

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncoder_Encode(t *testing.T) {
	type testRow struct {
		name   string
		size   int
		text   string
		expect []int
	}

	testData := [...]testRow{
		{name: "empty", size: 256, text: "", expect: nil},
		{name: "single", size: 256, text: "A", expect: []int{65}},
		{name: "ABABABA", size: 256, text: "ABABABA", expect: []int{65, 66, 256, 258}},
		{name: "ABABABA-tight", size: 67, text: "ABABABA", expect: []int{65, 66, 67, 69}},
		{name: "ABABABA-unicode", size: DefaultDictionarySize, text: "ABABABA", expect: []int{65, 66, 0x110000, 0x110002}},
		{name: "repeat", size: 256, text: "aaaaaaa", expect: []int{97, 256, 257, 97}},
		{
			name:   "TOBEORNOT",
			size:   256,
			text:   "TOBEORNOTTOBEORTOBEORNOT",
			expect: []int{84, 79, 66, 69, 79, 82, 78, 79, 84, 256, 258, 260, 265, 259, 261, 263},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			e, err := NewEncoder(row.size)
			if err != nil {
				t.Fatalf("NewEncoder failed: %v", err)
			}
			actual, err := e.Encode(row.text)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if diff := cmp.Diff(row.expect, actual); diff != "" {
				t.Errorf("wrong codes (-expect +actual):\n%s", diff)
			}

			d, err := NewDecoder(row.size)
			if err != nil {
				t.Fatalf("NewDecoder failed: %v", err)
			}
			text, err := d.Decode(actual)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if text != row.text {
				t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", row.text, text)
			}
		})
	}
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	e, err := NewEncoder(128)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	if _, err := e.Encode("plain ascii é"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestEncode_InvalidUTF8(t *testing.T) {
	for _, text := range []string{"a\xffb", "\xc3", "ok\xed\xa0\x80"} {
		if _, err := Encode(text, 0); !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Encode(%q): expected ErrUnknownSymbol, got %v", text, err)
		}
	}
}

func TestDictionarySize(t *testing.T) {
	for _, size := range []int{-1, 0, DefaultDictionarySize + 1} {
		if _, err := NewEncoder(size); !errors.Is(err, ErrDictionarySize) {
			t.Errorf("NewEncoder(%d): expected ErrDictionarySize, got %v", size, err)
		}
		if _, err := NewDecoder(size); !errors.Is(err, ErrDictionarySize) {
			t.Errorf("NewDecoder(%d): expected ErrDictionarySize, got %v", size, err)
		}
	}
}

func TestDecoder_Corrupt(t *testing.T) {
	type testRow struct {
		name  string
		size  int
		codes []int
	}

	testData := [...]testRow{
		{name: "first-not-seed", size: 256, codes: []int{256}},
		{name: "first-negative", size: 256, codes: []int{-5}},
		{name: "first-far-out", size: 3, codes: []int{1 << 40}},
		{name: "negative", size: 256, codes: []int{65, -1}},
		{name: "too-far-ahead", size: 256, codes: []int{65, 257}},
		{name: "surrogate", size: DefaultDictionarySize, codes: []int{0xD800}},
		{name: "surrogate-later", size: DefaultDictionarySize, codes: []int{65, 0xDFFF}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			d, err := NewDecoder(row.size)
			if err != nil {
				t.Fatalf("NewDecoder failed: %v", err)
			}
			if _, err := d.Decode(row.codes); !errors.Is(err, ErrCorrupt) {
				t.Errorf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}

func TestParseCodes(t *testing.T) {
	codes, err := ParseCodes("65 66 256 258")
	if err != nil {
		t.Fatalf("ParseCodes failed: %v", err)
	}
	if diff := cmp.Diff([]int{65, 66, 256, 258}, codes); diff != "" {
		t.Errorf("wrong codes (-expect +actual):\n%s", diff)
	}

	if codes, err := ParseCodes(""); err != nil || len(codes) != 0 {
		t.Errorf("expected no codes, got %v, %v", codes, err)
	}

	for _, s := range []string{" ", "65  66", "65 ", "-1", "+1", "0x41", "6a", "99999999999999999999999"} {
		if _, err := ParseCodes(s); !errors.Is(err, ErrCorrupt) {
			t.Errorf("ParseCodes(%q): expected ErrCorrupt, got %v", s, err)
		}
	}
}

func TestFormatCodes(t *testing.T) {
	if s := FormatCodes([]int{65, 66, 1114112, 1114114}); s != "65 66 1114112 1114114" {
		t.Errorf("wrong output: %q", s)
	}
	if s := FormatCodes(nil); s != "" {
		t.Errorf("expected empty output, got %q", s)
	}
}

func TestRoundTrip(t *testing.T) {
	texts := [...]string{
		"",
		"a",
		"ABABABA",
		"hello 😀 world 😀😀😀",
		"Ünïcödé — 日本語テキスト",
		"line one\nline two\r\n\ttabbed\x00nul",
		strings.Repeat("abcabcabd", 200),
		strings.Repeat("🎉", 100),
	}
	for _, text := range texts {
		artifact, err := Encode(text, 0)
		if err != nil {
			t.Errorf("Encode(%q) failed: %v", text, err)
			continue
		}
		actual, err := Decode(artifact, 0)
		if err != nil {
			t.Errorf("Decode(%q) failed: %v", artifact, err)
			continue
		}
		if actual != text {
			t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", text, actual)
		}
	}
}

func TestEncode_Artifact(t *testing.T) {
	artifact, err := Encode("ABABABA", 256)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if artifact != "65 66 256 258" {
		t.Errorf("expected %q, got %q", "65 66 256 258", artifact)
	}
}

func TestCodec(t *testing.T) {
	c := Codec{DictionarySize: 256}
	if c.Name() != "lzw" {
		t.Errorf("expected name %q, got %q", "lzw", c.Name())
	}

	artifact, err := c.Encode("banana bandana")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	text, err := c.Decode(artifact)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if text != "banana bandana" {
		t.Errorf("expected %q, got %q", "banana bandana", text)
	}

	if _, err := c.Decode("65 300"); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}
