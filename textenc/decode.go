// Package textenc turns meta-event payload bytes into strings through an
// ordered fallback chain: strict UTF-8, then Windows-1252, then a raw
// byte-to-rune mapping. The last stage is total, so decoding never fails.
package textenc

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	errInvalidUTF8  = errors.New("textenc: invalid UTF-8 sequence")
	errUnmappedByte = errors.New("textenc: byte not mapped in Windows-1252")
)

// step is one decoding attempt: it either produces a string or fails
// explicitly so the chain moves on.
type step struct {
	name   string
	decode func([]byte) (string, error)
}

//nolint:gochecknoglobals // Fixed decode order, evaluated in sequence.
var chain = []step{
	{name: "utf-8", decode: decodeUTF8},
	{name: "windows-1252", decode: decodeWindows1252},
	{name: "raw", decode: decodeRaw},
}

// Decode converts payload bytes to a string. The final raw stage accepts
// every byte value, so a usable string comes back for any input.
func Decode(payload []byte) string {
	for _, s := range chain {
		if text, err := s.decode(payload); err == nil {
			return text
		}
	}

	// Unreachable: decodeRaw never fails.
	return string(payload)
}

func decodeUTF8(payload []byte) (string, error) {
	if !utf8.Valid(payload) {
		return "", errInvalidUTF8
	}

	return string(payload), nil
}

// decodeWindows1252 covers Latin diacritics in single-byte payloads. The
// code page leaves five byte values undefined; charmap turns those into
// U+FFFD, which this stage treats as a failure so the raw mapping takes
// over.
func decodeWindows1252(payload []byte) (string, error) {
	text, err := charmap.Windows1252.NewDecoder().Bytes(payload)
	if err != nil {
		return "", err
	}

	if strings.ContainsRune(string(text), utf8.RuneError) {
		return "", errUnmappedByte
	}

	return string(text), nil
}

// decodeRaw maps each byte to the codepoint of the same value. Total over
// 0-255, so it always succeeds.
func decodeRaw(payload []byte) (string, error) {
	runes := make([]rune, len(payload))
	for i, b := range payload {
		runes[i] = rune(b)
	}

	return string(runes), nil
}
