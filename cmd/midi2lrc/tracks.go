package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/iSimon97/Midi2LRC/lyrics"
)

func tracksCommand() *cli.Command {
	return &cli.Command{
		Name:      "tracks",
		Usage:     "List the tracks of a MIDI file and which one would be selected",
		ArgsUsage: "<file>",
		Action:    runTracks,
	}
}

func runTracks(_ context.Context, cmd *cli.Command) error {
	doc, _, _, err := loadDocument(cmd)
	if err != nil {
		return err
	}

	summaries := doc.Summaries()
	selected := lyrics.Pick(summaries)

	_, _ = fmt.Fprintf(os.Stdout, "format:         %d\n", doc.Header.Format)
	_, _ = fmt.Fprintf(os.Stdout, "ticks per beat: %d\n", doc.Header.TicksPerBeat)
	_, _ = fmt.Fprintf(os.Stdout, "tempo changes:  %d\n", len(doc.Tempos))

	for _, summary := range summaries {
		marker := " "
		if summary.Index == selected {
			marker = "*"
		}

		_, _ = fmt.Fprintf(os.Stdout, "%s %3d  %-32q  %d lyric events\n",
			marker, summary.Index, summary.Name, summary.LyricCount)
	}

	return nil
}
