// Package tempo converts absolute ticks into elapsed seconds by piecewise
// integration over the file's tempo breakpoints.
package tempo

import (
	"errors"
	"fmt"
	"sort"

	midi2lrc "github.com/iSimon97/Midi2LRC"
)

// DefaultMicrosPerBeat applies from tick 0 until the first breakpoint when
// no breakpoint is declared there (500000 µs/beat = 120 BPM).
const DefaultMicrosPerBeat = 500000

const microsPerSecond = 1_000_000

var errTicksPerBeat = errors.New("tempo: ticks per beat must be positive")

// Map is an immutable tick-to-seconds conversion built from all tempo
// breakpoints of a parsed document.
type Map struct {
	points       []midi2lrc.TempoBreakpoint
	ticksPerBeat uint16
}

// NewMap sorts the breakpoints ascending by tick and returns a conversion
// map. The sort is stable: breakpoints sharing a tick keep file order, and
// integration past that tick uses the last of them.
func NewMap(points []midi2lrc.TempoBreakpoint, ticksPerBeat uint16) (*Map, error) {
	if ticksPerBeat == 0 {
		return nil, fmt.Errorf("%w: %w", midi2lrc.ErrFormat, errTicksPerBeat)
	}

	sorted := make([]midi2lrc.TempoBreakpoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tick < sorted[j].Tick
	})

	return &Map{points: sorted, ticksPerBeat: ticksPerBeat}, nil
}

// FromDocument builds the map for a parsed document.
func FromDocument(doc *midi2lrc.Document) (*Map, error) {
	return NewMap(doc.Tempos, doc.Header.TicksPerBeat)
}

// FirstMicrosPerBeat returns the tempo of the earliest breakpoint, or the
// default when the map has none. Duplicates at the earliest tick resolve
// the same way integration does: the last of them wins.
func (m *Map) FirstMicrosPerBeat() uint32 {
	if len(m.points) == 0 {
		return DefaultMicrosPerBeat
	}

	first := m.points[0]
	for _, point := range m.points[1:] {
		if point.Tick != first.Tick {
			break
		}

		first = point
	}

	return first.MicrosPerBeat
}

// ToSeconds converts an absolute tick into elapsed seconds. The result is
// monotonically non-decreasing in the tick for any valid breakpoint set.
func (m *Map) ToSeconds(tick uint64) float64 {
	if len(m.points) == 0 {
		return m.segment(tick, DefaultMicrosPerBeat)
	}

	current := uint32(DefaultMicrosPerBeat)
	if m.points[0].Tick == 0 {
		current = m.points[0].MicrosPerBeat
	}

	seconds := 0.0

	var lastTick uint64

	for _, point := range m.points {
		if point.Tick >= tick {
			break
		}

		seconds += m.segment(point.Tick-lastTick, current)
		lastTick = point.Tick
		current = point.MicrosPerBeat
	}

	return seconds + m.segment(tick-lastTick, current)
}

// segment is the duration of deltaTicks at a fixed tempo.
func (m *Map) segment(deltaTicks uint64, microsPerBeat uint32) float64 {
	return float64(deltaTicks) / float64(m.ticksPerBeat) * float64(microsPerBeat) / microsPerSecond
}
