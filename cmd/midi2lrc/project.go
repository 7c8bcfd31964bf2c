package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/iSimon97/Midi2LRC/lyrics"
	"github.com/iSimon97/Midi2LRC/project"
)

func projectCommand() *cli.Command {
	return &cli.Command{
		Name:      "project",
		Usage:     "Emit the derived song structure as JSON for the project-file generator",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file path (- for stdout)",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "song name; default is the selected track name or the file stem",
			},
			&cli.IntFlag{
				Name:    "track",
				Aliases: []string{"t"},
				Value:   -1,
				Usage:   "track index to extract lyrics from; -1 selects automatically",
			},
		},
		Action: runProject,
	}
}

func runProject(_ context.Context, cmd *cli.Command) error {
	doc, clock, path, err := loadDocument(cmd)
	if err != nil {
		return err
	}

	trackIndex := resolveTrack(doc, cmd.Int("track"))

	lines, err := lyrics.Lines(doc, trackIndex, clock)
	if err != nil {
		return fmt.Errorf("extracting lyrics: %w", err)
	}

	name := cmd.String("name")
	if name == "" {
		name = doc.Tracks[trackIndex].Name
	}

	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	song := project.Build(name, clock, lines)

	encoded, err := json.MarshalIndent(song, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding song: %w", err)
	}

	return writeText(cmd.String("output"), string(encoded)+"\n")
}
