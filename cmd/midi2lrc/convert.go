package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	midi2lrc "github.com/iSimon97/Midi2LRC"
	"github.com/iSimon97/Midi2LRC/lrc"
	"github.com/iSimon97/Midi2LRC/lyrics"
	"github.com/iSimon97/Midi2LRC/smf"
	"github.com/iSimon97/Midi2LRC/tempo"
)

var errInvalidArgCount = errors.New("expected exactly one argument: file path")

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a MIDI file with embedded lyrics to LRC",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (- for stdout); default is the input with a .lrc extension",
			},
			&cli.IntFlag{
				Name:    "track",
				Aliases: []string{"t"},
				Value:   -1,
				Usage:   "track index to extract lyrics from; -1 selects automatically",
			},
		},
		Action: runConvert,
	}
}

func runConvert(_ context.Context, cmd *cli.Command) error {
	doc, clock, path, err := loadDocument(cmd)
	if err != nil {
		return err
	}

	trackIndex := resolveTrack(doc, cmd.Int("track"))

	lines, err := lyrics.Lines(doc, trackIndex, clock)
	if err != nil {
		return fmt.Errorf("extracting lyrics: %w", err)
	}

	output := cmd.String("output")
	if output == "" {
		output = siblingLRCPath(path)
	}

	return writeText(output, lrc.Render(lines)+"\n")
}

// loadDocument reads and parses the single file argument, returning the
// document, its tempo map, and the input path.
func loadDocument(cmd *cli.Command) (*midi2lrc.Document, *tempo.Map, string, error) {
	if cmd.NArg() != 1 {
		return nil, nil, "", fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
	}

	path := cmd.Args().First()

	data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified MIDI files
	if err != nil {
		return nil, nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := smf.Parse(data)
	if err != nil {
		return nil, nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}

	clock, err := tempo.FromDocument(doc)
	if err != nil {
		return nil, nil, "", fmt.Errorf("building tempo map: %w", err)
	}

	return doc, clock, path, nil
}

// resolveTrack applies the --track override, falling back to the selector
// heuristic for negative values.
func resolveTrack(doc *midi2lrc.Document, flagValue int) int {
	if flagValue >= 0 {
		return flagValue
	}

	return lyrics.Pick(doc.Summaries())
}

func siblingLRCPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".lrc"
}

func writeText(output, text string) error {
	if output == "-" {
		if _, err := os.Stdout.WriteString(text); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil { //nolint:gosec // LRC output is not sensitive
		return fmt.Errorf("writing %s: %w", output, err)
	}

	return nil
}
