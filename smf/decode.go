// Package smf decodes Standard MIDI File containers into immutable
// midi2lrc documents: the header chunk, every track's event stream, and
// all tempo breakpoints across the file.
package smf

import (
	"bytes"
	"fmt"

	midi2lrc "github.com/iSimon97/Midi2LRC"
	"github.com/iSimon97/Midi2LRC/textenc"
)

// Chunk tags and status bytes of the container format.
const (
	headerTag = "MThd"
	trackTag  = "MTrk"

	headerFieldBytes = 6 // format, track count, division

	statusMeta        = 0xFF
	statusSysEx       = 0xF0
	statusSysExEscape = 0xF7

	// smpteFlag marks a division word carrying SMPTE timing instead of
	// ticks per beat.
	smpteFlag = 0x8000

	tempoPayloadBytes = 3
)

// channelPayloadBytes returns the data byte count for a channel event by
// status high nibble: 2 for note-off/on, aftertouch, control change and
// pitch bend, 1 for program change and channel pressure, 0 otherwise.
func channelPayloadBytes(status byte) int {
	switch status & 0xF0 {
	case 0x80, 0x90, 0xA0, 0xB0, 0xE0:
		return 2
	case 0xC0, 0xD0:
		return 1
	default:
		return 0
	}
}

// Parse decodes a complete SMF buffer. The returned document is independent
// of data: retained payloads are copied, so the caller may reuse the buffer.
// Any malformation yields an error matching midi2lrc.ErrFormat and no
// document.
func Parse(data []byte) (*midi2lrc.Document, error) {
	cur := &cursor{buf: data}

	header, err := parseHeader(cur)
	if err != nil {
		return nil, err
	}

	doc := &midi2lrc.Document{
		Header: header,
		Tracks: make([]midi2lrc.Track, 0, header.TrackCount),
	}

	for i := range int(header.TrackCount) {
		track, tempos, err := parseTrack(cur)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}

		doc.Tracks = append(doc.Tracks, track)
		doc.Tempos = append(doc.Tempos, tempos...)
	}

	return doc, nil
}

func parseHeader(cur *cursor) (midi2lrc.FileHeader, error) {
	var header midi2lrc.FileHeader

	if err := cur.readTag(headerTag); err != nil {
		return header, err
	}

	length, err := cur.readUint32()
	if err != nil {
		return header, err
	}

	if length < headerFieldBytes {
		return header, fmt.Errorf("%w: declared %d", wrapFormat(errHeaderSize), length)
	}

	if header.Format, err = cur.readUint16(); err != nil {
		return header, err
	}

	if header.TrackCount, err = cur.readUint16(); err != nil {
		return header, err
	}

	division, err := cur.readUint16()
	if err != nil {
		return header, err
	}

	if division&smpteFlag != 0 {
		return header, wrapFormat(errSMPTE)
	}

	if division == 0 {
		return header, wrapFormat(errDivision)
	}

	header.TicksPerBeat = division

	// Skip any declared header bytes beyond the known fields.
	if err := cur.skip(int(length) - headerFieldBytes); err != nil {
		return header, err
	}

	return header, nil
}

//nolint:gocognit // One arm per event class, mirroring the wire format.
func parseTrack(cur *cursor) (midi2lrc.Track, []midi2lrc.TempoBreakpoint, error) {
	var track midi2lrc.Track

	var tempos []midi2lrc.TempoBreakpoint

	if err := cur.readTag(trackTag); err != nil {
		return track, nil, err
	}

	length, err := cur.readUint32()
	if err != nil {
		return track, nil, err
	}

	end := cur.pos + int(length)
	if end > len(cur.buf) {
		return track, nil, fmt.Errorf("%w: chunk length %d", wrapFormat(errTruncated), length)
	}

	var absTick uint64

	for cur.pos < end {
		delta, _, err := cur.readVarLen()
		if err != nil {
			return track, nil, err
		}

		absTick += uint64(delta)

		status, err := cur.readByte()
		if err != nil {
			return track, nil, err
		}

		event := midi2lrc.TrackEvent{Delta: delta}

		switch {
		case status == statusMeta:
			event.Kind = midi2lrc.KindMeta

			metaType, err := cur.readByte()
			if err != nil {
				return track, nil, err
			}

			payloadLen, _, err := cur.readVarLen()
			if err != nil {
				return track, nil, err
			}

			payload, err := cur.readBytes(int(payloadLen))
			if err != nil {
				return track, nil, err
			}

			event.MetaType = metaType

			switch metaType {
			case midi2lrc.MetaTrackName:
				track.Name = textenc.Decode(payload)
				event.Payload = bytes.Clone(payload)
			case midi2lrc.MetaTempo:
				if len(payload) != tempoPayloadBytes {
					return track, nil, fmt.Errorf("%w: got %d", wrapFormat(errTempoBytes), len(payload))
				}

				micros := uint32(payload[0])<<16 | uint32(payload[1])<<8 | uint32(payload[2])
				tempos = append(tempos, midi2lrc.TempoBreakpoint{Tick: absTick, MicrosPerBeat: micros})
				event.Payload = bytes.Clone(payload)
			case midi2lrc.MetaLyric:
				event.Payload = bytes.Clone(payload)
			default:
				// Skipped structurally: length consumed, bytes dropped.
			}

		case status == statusSysEx || status == statusSysExEscape:
			event.Kind = midi2lrc.KindSysEx

			payloadLen, _, err := cur.readVarLen()
			if err != nil {
				return track, nil, err
			}

			if err := cur.skip(int(payloadLen)); err != nil {
				return track, nil, err
			}

		case status < 0x80:
			// A data byte in status position means the file relies on
			// running status, which this decoder does not reuse.
			return track, nil, fmt.Errorf("%w: data byte 0x%02X at offset %d",
				wrapFormat(errRunning), status, cur.pos-1)

		default:
			event.Kind = midi2lrc.KindChannel

			if err := cur.skip(channelPayloadBytes(status)); err != nil {
				return track, nil, err
			}
		}

		if cur.pos > end {
			return track, nil, wrapFormat(errTrackExtent)
		}

		track.Events = append(track.Events, event)
	}

	return track, tempos, nil
}
