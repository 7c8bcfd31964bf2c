package midi2lrc_test

import (
	"testing"

	midi2lrc "github.com/iSimon97/Midi2LRC"
)

func TestTrackLyricEventCount(t *testing.T) {
	t.Parallel()

	track := midi2lrc.Track{Events: []midi2lrc.TrackEvent{
		{Kind: midi2lrc.KindMeta, MetaType: midi2lrc.MetaLyric, Payload: []byte("la")},
		{Kind: midi2lrc.KindMeta, MetaType: midi2lrc.MetaTrackName, Payload: []byte("name")},
		{Kind: midi2lrc.KindChannel},
		// Same type code as a lyric meta, but sysex events never count.
		{Kind: midi2lrc.KindSysEx, MetaType: midi2lrc.MetaLyric},
		{Kind: midi2lrc.KindMeta, MetaType: midi2lrc.MetaLyric, Payload: []byte("\r")},
	}}

	if got := track.LyricEventCount(); got != 2 {
		t.Errorf("LyricEventCount = %d, want 2", got)
	}

	if got := (midi2lrc.Track{}).LyricEventCount(); got != 0 {
		t.Errorf("empty track LyricEventCount = %d, want 0", got)
	}
}

func TestDocumentSummaries(t *testing.T) {
	t.Parallel()

	doc := &midi2lrc.Document{Tracks: []midi2lrc.Track{
		{Name: "Conductor"},
		{Name: "Vocals", Events: []midi2lrc.TrackEvent{
			{Kind: midi2lrc.KindMeta, MetaType: midi2lrc.MetaLyric, Payload: []byte("hi")},
		}},
	}}

	want := []midi2lrc.TrackSummary{
		{Index: 0, Name: "Conductor", LyricCount: 0},
		{Index: 1, Name: "Vocals", LyricCount: 1},
	}

	got := doc.Summaries()
	if len(got) != len(want) {
		t.Fatalf("got %d summaries, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("summary %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEventKindString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind midi2lrc.EventKind
		want string
	}{
		{midi2lrc.KindMeta, "meta"},
		{midi2lrc.KindSysEx, "sysex"},
		{midi2lrc.KindChannel, "channel"},
		{midi2lrc.EventKind(99), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
