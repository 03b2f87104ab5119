package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var roundTripTexts = [...]string{
	"",
	"a",
	"aaaa",
	"AB",
	"aaabbbbcc",
	"abracadabra",
	"Hello, World!\n",
	"line one\nline two\n\n",
	"\x00\x00\x01\xff",
	strings.Repeat("z", 10000),
	strings.Repeat("the quick brown fox jumps over the lazy dog. ", 50),
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, text := range roundTripTexts {
		header, payload := Encode([]byte(text))
		got, err := Decode(header, payload)
		if err != nil {
			t.Errorf("Decode(Encode(%.20q)): %v", text, err)
			continue
		}
		if diff := cmp.Diff(text, string(got)); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDecode_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		text := make([]byte, rng.Intn(4096))
		alphabet := 1 + rng.Intn(NumSymbols)
		for i := range text {
			text[i] = byte(rng.Intn(alphabet))
		}

		header, payload := Encode(text)
		got, err := Decode(header, payload)
		if err != nil {
			t.Fatalf("trial %d: Decode: %v", trial, err)
		}
		if !bytes.Equal(text, got) {
			t.Fatalf("trial %d: round trip mismatch", trial)
		}
	}
}

func TestDecode_SingleSymbol(t *testing.T) {
	got, err := Decode("97 4", "")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got) != "aaaa" {
		t.Errorf("Decode = %q, want %q", got, "aaaa")
	}
}

func TestDecode_EmptyHeader(t *testing.T) {
	for _, payload := range []string{"", "0101", "garbage"} {
		got, err := Decode("", payload)
		if err != nil {
			t.Errorf("Decode(\"\", %q): %v", payload, err)
		}
		if len(got) != 0 {
			t.Errorf("Decode(\"\", %q) = %q, want empty", payload, got)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	type testRow struct {
		name    string
		header  string
		payload string
		want    error
	}

	testData := [...]testRow{
		{name: "odd header", header: "97 3 98", payload: "", want: ErrMalformedHeader},
		{name: "truncated", header: "97 3 98 4 99 2", payload: "1111110000101", want: ErrCodeTableMismatch},
		{name: "extra code", header: "97 3 98 4 99 2", payload: "111111000010100", want: ErrCodeTableMismatch},
		{name: "short", header: "97 3 98 4 99 2", payload: "", want: ErrCodeTableMismatch},
		{name: "not a bit", header: "97 3 98 4 99 2", payload: "11111100002010", want: ErrCodeTableMismatch},
		{name: "single symbol with bits", header: "97 4", payload: "0", want: ErrCodeTableMismatch},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			got, err := Decode(row.header, row.payload)
			if !errors.Is(err, row.want) {
				t.Fatalf("Decode(%q, %q) error = %v, want %v", row.header, row.payload, err, row.want)
			}
			if got != nil {
				t.Errorf("Decode(%q, %q) returned partial output %q", row.header, row.payload, got)
			}
		})
	}
}

func TestDecoder_SameTreeAsEncoder(t *testing.T) {
	freqs := CountFrequencies([]byte("mississippi river"))
	e := NewEncoder(freqs)
	d := NewDecoder(freqs)
	if diff := cmp.Diff(e.Root(), d.Root()); diff != "" {
		t.Errorf("trees differ (-encoder +decoder):\n%s", diff)
	}
}
