// Package lyrics groups a track's lyric meta events into timed lines and
// picks the default lyric-bearing track.
package lyrics

import (
	"fmt"
	"strings"

	midi2lrc "github.com/iSimon97/Midi2LRC"
	"github.com/iSimon97/Midi2LRC/tempo"
	"github.com/iSimon97/Midi2LRC/textenc"
)

// Placeholder markers: tokens carrying publisher or metadata text rather
// than sung lyrics.
const (
	markerDashes    = "---"
	markerCopyright = "(c)"
)

// Lines walks one track's events in order and assembles its lyric lines.
// Timestamps come from converting each line's start tick through the tempo
// map. A track index outside the document yields midi2lrc.ErrTrackIndex.
func Lines(doc *midi2lrc.Document, trackIndex int, clock *tempo.Map) ([]midi2lrc.LyricLine, error) {
	if trackIndex < 0 || trackIndex >= len(doc.Tracks) {
		return nil, fmt.Errorf("%w: %d (document has %d tracks)",
			midi2lrc.ErrTrackIndex, trackIndex, len(doc.Tracks))
	}

	build := builder{clock: clock}

	var absTick uint64

	for _, event := range doc.Tracks[trackIndex].Events {
		absTick += uint64(event.Delta)

		if event.Kind != midi2lrc.KindMeta || event.MetaType != midi2lrc.MetaLyric {
			continue
		}

		build.consume(midi2lrc.LyricToken{Tick: absTick, Text: textenc.Decode(event.Payload)})
	}

	build.flush()

	return build.lines, nil
}

// builder accumulates lyric tokens into one line at a time: a text buffer
// plus the tick of the first retained token, emitted on a line break.
type builder struct {
	clock *tempo.Map

	acc       strings.Builder
	startTick uint64
	startSet  bool
	lastTick  uint64

	lines []midi2lrc.LyricLine
}

func (b *builder) consume(token midi2lrc.LyricToken) {
	b.lastTick = token.Tick

	// Publisher and metadata tokens neither join a line nor start one.
	if isPlaceholder(token.Text) {
		return
	}

	rest, broke := trimLineBreak(token.Text)
	if broke {
		if rest != "" {
			b.append(rest, token.Tick)
		}

		b.emit(token.Tick)

		return
	}

	b.append(token.Text, token.Tick)
}

func (b *builder) append(text string, tick uint64) {
	if !b.startSet {
		b.startTick = tick
		b.startSet = true
	}

	b.acc.WriteString(text)
}

// emit closes the current line at the given fallback tick. A line whose
// trimmed text is empty is dropped, not emitted.
func (b *builder) emit(currentTick uint64) {
	text := strings.TrimSpace(b.acc.String())
	if text != "" {
		start := currentTick
		if b.startSet {
			start = b.startTick
		}

		b.lines = append(b.lines, midi2lrc.LyricLine{
			Start: b.clock.ToSeconds(start),
			Text:  text,
		})
	}

	b.acc.Reset()
	b.startSet = false
}

// flush emits whatever the accumulator still holds after the last event.
func (b *builder) flush() {
	b.emit(b.lastTick)
}

func isPlaceholder(text string) bool {
	return strings.HasPrefix(text, markerDashes) ||
		strings.HasPrefix(text, markerCopyright) ||
		strings.Contains(text, ":")
}

// trimLineBreak reports whether the token is or ends with a line-break
// sequence, returning the token with the trailing break characters removed.
func trimLineBreak(text string) (string, bool) {
	rest := strings.TrimRight(text, "\r\n")

	return rest, rest != text
}
