// Package lrc renders timed lyric lines in the textual LRC form
// "[mm:ss.xx] text".
package lrc

import (
	"fmt"
	"math"
	"strings"

	midi2lrc "github.com/iSimon97/Midi2LRC"
)

const secondsPerMinute = 60

// Timestamp renders seconds as "[mm:ss.xx]": minutes zero-padded to two
// digits, remaining seconds with exactly two decimals. Hundredths that
// round up to a full second carry into the second and minute fields.
func Timestamp(seconds float64) string {
	minutes := int(seconds) / secondsPerMinute
	rem := seconds - float64(minutes*secondsPerMinute)

	// Round to hundredths before formatting so 59.999 carries instead of
	// printing "60.00".
	rem = math.Round(rem*100) / 100
	if rem >= secondsPerMinute {
		rem -= secondsPerMinute
		minutes++
	}

	return fmt.Sprintf("[%02d:%05.2f]", minutes, rem)
}

// Line renders one lyric line.
func Line(line midi2lrc.LyricLine) string {
	return Timestamp(line.Start) + " " + line.Text
}

// Render joins all lines with a single line break between them.
func Render(lines []midi2lrc.LyricLine) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = Line(line)
	}

	return strings.Join(rendered, "\n")
}
