package smf_test

import (
	"bytes"
	"testing"

	gosmf "gitlab.com/gomidi/midi/v2/smf"

	midi2lrc "github.com/iSimon97/Midi2LRC"
	"github.com/iSimon97/Midi2LRC/smf"
)

// TestParseAgainstReference decodes the same buffer with this package and
// with gomidi's SMF reader, then compares what both saw: the time division,
// the track count, and every lyric event's absolute tick and text.
func TestParseAgainstReference(t *testing.T) {
	t.Parallel()

	data := header(1, 2, 384)
	data = append(data, trackChunk(
		tempoEvent(0, 600000),
		tempoEvent(96, 450000),
		endOfTrack(0),
	)...)
	data = append(data, trackChunk(
		metaEvent(0, 0x03, []byte("Vocals")),
		metaEvent(0, 0x05, []byte("Shine ")),
		metaEvent(64, 0x05, []byte("on\r")),
		[]byte{0, 0x90, 0x45, 0x60},
		[]byte{32, 0x80, 0x45, 0x00},
		metaEvent(0, 0x05, []byte("bright\r")),
		endOfTrack(0),
	)...)

	doc, err := smf.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	ref, err := gosmf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reference reader rejected the buffer: %v", err)
	}

	ticks, ok := ref.TimeFormat.(gosmf.MetricTicks)
	if !ok {
		t.Fatalf("reference time format %v is not metric", ref.TimeFormat)
	}

	if int(doc.Header.TicksPerBeat) != int(ticks) {
		t.Errorf("ticks per beat: got %d, reference %d", doc.Header.TicksPerBeat, int(ticks))
	}

	if len(doc.Tracks) != len(ref.Tracks) {
		t.Fatalf("track count: got %d, reference %d", len(doc.Tracks), len(ref.Tracks))
	}

	for i := range doc.Tracks {
		got := lyricTicks(doc.Tracks[i])
		want := referenceLyricTicks(ref.Tracks[i])

		if len(got) != len(want) {
			t.Fatalf("track %d: got %d lyric events, reference %d", i, len(got), len(want))
		}

		for j := range got {
			if got[j] != want[j] {
				t.Errorf("track %d lyric %d: got %+v, reference %+v", i, j, got[j], want[j])
			}
		}
	}
}

func lyricTicks(track midi2lrc.Track) []midi2lrc.LyricToken {
	var tokens []midi2lrc.LyricToken

	var absTick uint64

	for _, ev := range track.Events {
		absTick += uint64(ev.Delta)

		if ev.Kind == midi2lrc.KindMeta && ev.MetaType == midi2lrc.MetaLyric {
			tokens = append(tokens, midi2lrc.LyricToken{Tick: absTick, Text: string(ev.Payload)})
		}
	}

	return tokens
}

func referenceLyricTicks(track gosmf.Track) []midi2lrc.LyricToken {
	var tokens []midi2lrc.LyricToken

	var absTick uint64

	for _, event := range track {
		absTick += uint64(event.Delta)

		var lyric string
		if event.Message.GetMetaLyric(&lyric) {
			tokens = append(tokens, midi2lrc.LyricToken{Tick: absTick, Text: lyric})
		}
	}

	return tokens
}
