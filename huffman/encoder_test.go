package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func makeTestSymbols() []Symbol {
	return []Symbol{
		{'a', 5},
		{'b', 9},
		{'c', 12},
		{'d', 13},
		{'e', 16},
		{'f', 45},
	}
}

func TestEncoder(t *testing.T) {
	var e Encoder
	if err := e.Init(makeTestSymbols()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tModel() = \"01f001c1d001a1b1e\"\n",
		"\tEncode('f') = \"0\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"111\"\n",
		"\tEncode('a') = \"1100\"\n",
		"\tEncode('b') = \"1101\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	if diff := cmp.Diff(expectDump, buf.String()); diff != "" {
		t.Errorf("wrong output (-expect +actual):\n%s", diff)
	}

	if e.Len() != 6 {
		t.Errorf("expected 6 codes, got %d", e.Len())
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var e Encoder
	if err := e.Init([]Symbol{{'a', 4}}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	hc, found := e.Encode('a')
	if !found || hc != singleLeafCode {
		t.Errorf("expected code %s, got %s (found=%v)", singleLeafCode, hc, found)
	}
	if model := e.Model(); model != "1a" {
		t.Errorf("expected model %q, got %q", "1a", model)
	}
	if e.MinSize() != 1 || e.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", e.MinSize(), e.MaxSize())
	}

	stream, err := e.EncodeText("aaaa")
	if err != nil {
		t.Fatalf("EncodeText failed: %v", err)
	}
	if stream != "0000" {
		t.Errorf("expected %q, got %q", "0000", stream)
	}
}

func TestEncoder_NoSymbols(t *testing.T) {
	var e Encoder
	err := e.Init(nil)
	if !errors.Is(err, ErrNoSymbols) {
		t.Errorf("expected ErrNoSymbols, got %v", err)
	}
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	var e Encoder
	if err := e.Init(Analyze("abc")); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, found := e.Encode('z'); found {
		t.Errorf("expected no code for 'z'")
	}
	_, err := e.EncodeText("abz")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestAnalyze(t *testing.T) {
	type testRow struct {
		name   string
		text   string
		expect []Symbol
	}

	testData := [...]testRow{
		{name: "empty", text: "", expect: nil},
		{name: "single", text: "aaaa", expect: []Symbol{{'a', 4}}},
		{name: "abracadabra", text: "abracadabra", expect: []Symbol{{'a', 5}, {'b', 2}, {'r', 2}, {'c', 1}, {'d', 1}}},
		{name: "emoji", text: "😀x😀", expect: []Symbol{{'😀', 2}, {'x', 1}}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := Analyze(row.text)
			if diff := cmp.Diff(row.expect, actual); diff != "" {
				t.Errorf("wrong symbols (-expect +actual):\n%s", diff)
			}
		})
	}
}
