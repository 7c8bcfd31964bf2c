package midi2lrc

import "errors"

var (
	// ErrFormat marks malformed input: a wrong chunk tag, a truncated
	// buffer, a bad header, or an unterminated variable-length quantity.
	// Fatal to the parse call; no partial document is returned.
	ErrFormat = errors.New("malformed SMF data")

	// ErrTrackIndex marks a track index outside the parsed document's track
	// count. Fatal to that extraction call only; the same document can be
	// queried again with a different index.
	ErrTrackIndex = errors.New("track index out of range")
)
