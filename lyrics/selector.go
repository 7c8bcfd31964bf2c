package lyrics

import (
	"strings"

	midi2lrc "github.com/iSimon97/Midi2LRC"
)

// Karaoke authoring tools commonly park the lyric text on a track named
// after the SysEx data it shadows.
const preferredNameFragment = "sysex"

// Pick returns the default lyric track: the lowest-indexed track whose name
// contains "sysex" (case-insensitive) and that carries lyric events, else
// the lowest-indexed track carrying lyric events, else 0.
func Pick(summaries []midi2lrc.TrackSummary) int {
	for _, summary := range summaries {
		if summary.LyricCount > 0 &&
			strings.Contains(strings.ToLower(summary.Name), preferredNameFragment) {
			return summary.Index
		}
	}

	for _, summary := range summaries {
		if summary.LyricCount > 0 {
			return summary.Index
		}
	}

	return 0
}
