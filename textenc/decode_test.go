package textenc_test

import (
	"testing"

	"github.com/iSimon97/Midi2LRC/textenc"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "empty", input: nil, want: ""},
		{name: "ascii", input: []byte("Hello"), want: "Hello"},
		{name: "valid_utf8_multibyte", input: []byte("Grüße"), want: "Grüße"},
		// 0xFC is ü in Windows-1252 and an invalid UTF-8 start byte.
		{name: "windows1252_umlaut", input: []byte{'M', 0xFC, 'l', 'l', 'e', 'r'}, want: "Müller"},
		// 0x80 is the euro sign in Windows-1252, not in Latin-1.
		{name: "windows1252_euro", input: []byte{0x80, ' ', 0x80}, want: "€ €"},
		// 0x81 is unmapped in Windows-1252; the raw stage maps each byte to
		// the codepoint of the same value.
		{name: "raw_fallback", input: []byte{'x', 0x81, 'y'}, want: "x\u0081y"},
		{name: "raw_fallback_high_bytes", input: []byte{0x8D, 0x8F, 0x90, 0x9D}, want: "\u008d\u008f\u0090\u009d"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := textenc.Decode(tc.input); got != tc.want {
				t.Errorf("Decode(% X) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// Decode is total: every single-byte input produces some string, never a
// panic or an empty result.
func TestDecodeNeverFails(t *testing.T) {
	t.Parallel()

	for b := range 256 {
		if got := textenc.Decode([]byte{byte(b)}); got == "" {
			t.Errorf("Decode(0x%02X) produced an empty string", b)
		}
	}
}
