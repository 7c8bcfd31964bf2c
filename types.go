// Package midi2lrc defines the parsed-document model shared by the SMF
// decoder, the tempo map, and the lyric extraction layers.
package midi2lrc

// Meta-event type codes whose payloads are retained by the parser.
// Every other meta type is skipped structurally (length read, bytes dropped).
const (
	MetaTrackName byte = 0x03
	MetaLyric     byte = 0x05
	MetaTempo     byte = 0x51
)

// EventKind classifies a decoded track event.
type EventKind uint8

const (
	// KindMeta is a 0xFF meta event. Payload is retained only for the
	// type codes above.
	KindMeta EventKind = iota
	// KindSysEx is a 0xF0/0xF7 system-exclusive event. Payload is discarded
	// after its length has been used to advance the cursor.
	KindSysEx
	// KindChannel is any other status byte. Payload is discarded.
	KindChannel
)

// String returns the human-readable name of the event kind.
func (k EventKind) String() string {
	switch k {
	case KindMeta:
		return "meta"
	case KindSysEx:
		return "sysex"
	case KindChannel:
		return "channel"
	}

	return "unknown"
}

// FileHeader holds the fields of the SMF header chunk.
type FileHeader struct {
	Format       uint16
	TrackCount   uint16
	TicksPerBeat uint16 // always > 0 in a parsed document
}

// TrackEvent is one delta-time-tagged event inside a track chunk.
type TrackEvent struct {
	// Delta is the tick distance from the previous event in the same track.
	Delta uint32
	Kind  EventKind
	// MetaType is the meta type code; meaningful only when Kind is KindMeta.
	MetaType byte
	// Payload holds the raw meta payload for retained type codes, nil
	// otherwise. Lyric payloads stay undecoded until extraction.
	Payload []byte
}

// Track is one decoded track chunk.
type Track struct {
	// Name is the decoded payload of the track's name meta event, empty if
	// the track has none.
	Name   string
	Events []TrackEvent
}

// LyricEventCount returns the number of lyric meta events in the track.
func (t Track) LyricEventCount() int {
	count := 0

	for _, ev := range t.Events {
		if ev.Kind == KindMeta && ev.MetaType == MetaLyric {
			count++
		}
	}

	return count
}

// TempoBreakpoint declares a new tempo effective from Tick onward.
type TempoBreakpoint struct {
	Tick          uint64
	MicrosPerBeat uint32
}

// LyricToken is one decoded lyric meta event at an absolute tick.
type LyricToken struct {
	Tick uint64
	Text string
}

// LyricLine is one emitted line of the timed-lyrics output.
// Text is non-empty after trimming; lines are ordered by ascending Start.
type LyricLine struct {
	Start float64 // seconds
	Text  string
}

// TrackSummary describes one track for selection and listing.
type TrackSummary struct {
	Index      int
	Name       string
	LyricCount int
}

// Document is the immutable result of one parse call. Every extraction
// operation takes the document as an explicit argument; there is no shared
// parse state, so independent documents never interfere.
type Document struct {
	Header FileHeader
	Tracks []Track
	// Tempos holds every tempo meta event across all tracks at its absolute
	// tick, in file order (unsorted).
	Tempos []TempoBreakpoint
}

// Summaries returns one TrackSummary per track, in track order.
func (d *Document) Summaries() []TrackSummary {
	summaries := make([]TrackSummary, len(d.Tracks))

	for i, track := range d.Tracks {
		summaries[i] = TrackSummary{
			Index:      i,
			Name:       track.Name,
			LyricCount: track.LyricEventCount(),
		}
	}

	return summaries
}
