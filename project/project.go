// Package project derives the song structure owed to the external
// project-file generator: a name, a BPM, and lines with start and end
// times. The generator's template and packaging formats are its own
// concern; only these fields cross the boundary.
package project

import (
	"math"

	midi2lrc "github.com/iSimon97/Midi2LRC"
	"github.com/iSimon97/Midi2LRC/tempo"
)

// lastLineSeconds extends the final line, which has no successor to end at.
const lastLineSeconds = 5

// Line is one lyric line with its display interval.
type Line struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Song is the derived handoff value for the project-file generator.
type Song struct {
	Name  string  `json:"songName"`
	BPM   float64 `json:"bpm"`
	Lines []Line  `json:"lines"`
}

// Build assembles the song: BPM from the file's first tempo, each line
// ending where the next begins, the last line ending five seconds after it
// starts.
func Build(name string, clock *tempo.Map, lines []midi2lrc.LyricLine) Song {
	song := Song{
		Name:  name,
		BPM:   roundHundredths(60_000_000 / float64(clock.FirstMicrosPerBeat())),
		Lines: make([]Line, len(lines)),
	}

	for i, line := range lines {
		end := line.Start + lastLineSeconds
		if i+1 < len(lines) {
			end = lines[i+1].Start
		}

		song.Lines[i] = Line{Start: line.Start, End: end, Text: line.Text}
	}

	return song
}

func roundHundredths(v float64) float64 {
	return math.Round(v*100) / 100
}
