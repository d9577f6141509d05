package midifile

import (
	"errors"
	"fmt"
)

// Channel voice status categories (high nibble of the status byte).
const (
	statusNoteOff           = 0x80
	statusNoteOn            = 0x90
	statusPolyAftertouch    = 0xa0
	statusController        = 0xb0
	statusProgramChange     = 0xc0
	statusChannelAftertouch = 0xd0
	statusPitchBend         = 0xe0
)

// Non-channel status bytes.
const (
	statusSysEx       = 0xf0
	statusSysExEscape = 0xf7
	statusMeta        = 0xff
)

// Meta event types the decoder acts on. Everything else is skipped by its
// declared length.
const (
	metaSetTempo   = 0x51
	metaEndOfTrack = 0x2f

	// setTempoLength is the only payload length a set-tempo event may declare.
	setTempoLength = 3
)

// trackScope is the decoder state the format policy threads between tracks:
// which channel has been confirmed as the piano channel, and the tick the
// track starts counting from.
type trackScope struct {
	channel   uint8
	confirmed bool
	startTick uint64
}

// decodeTrack scans to the next MTrk chunk and decodes its event stream,
// appending piano note events and tempo changes to events. The updated scope
// is returned so the format policy can carry it into the next track.
//
// The decoder is clipped to the chunk's declared length: an event that needs
// bytes past the boundary is ErrTrackOverrun, and reaching the boundary
// without an end-of-track event is ErrTrackUnderrun. An end-of-track event
// before the boundary ends the stream and the remaining declared bytes are
// stepped over, so on success the cursor always lands exactly on the boundary.
func decodeTrack(r *reader, scope trackScope, opts Options, events []trackEvent) ([]trackEvent, trackScope, error) {
	if err := seekChunk(r, trackTag, ErrTrackNotFound); err != nil {
		return nil, scope, err
	}

	length, err := r.u32()
	if err != nil {
		return nil, scope, fmt.Errorf("reading MTrk length: %w", err)
	}
	end := r.pos + int(length)
	if end > len(r.data) {
		return nil, scope, fmt.Errorf("%w: MTrk declares %d bytes", ErrOutOfBounds, length)
	}

	// Sub-reader clipped to the chunk, so any read past the declared length
	// fails instead of bleeding into the next chunk.
	tr := &reader{data: r.data[:end], pos: r.pos}

	tick := scope.startTick
	var running uint8
	sawEnd := false

stream:
	for tr.remaining() > 0 {
		delta, err := tr.varLen()
		if err != nil {
			return nil, scope, err
		}
		tick += delta

		status, err := tr.u8()
		if err != nil {
			return nil, scope, trackErr(err)
		}
		if status&0x80 == 0 {
			// High bit clear: this is a data byte and the status byte was
			// omitted. Put it back and reuse the running status.
			tr.unread()
			status = running
		} else {
			running = status
		}

		switch {
		case status == statusMeta:
			metaType, err := tr.u8()
			if err != nil {
				return nil, scope, trackErr(err)
			}
			metaLen, err := tr.varLen()
			if err != nil {
				return nil, scope, err
			}
			switch metaType {
			case metaEndOfTrack:
				sawEnd = true
				break stream
			case metaSetTempo:
				if metaLen != setTempoLength {
					return nil, scope, fmt.Errorf("%w: set-tempo with length %d", ErrUnknownEvent, metaLen)
				}
				tempo, err := tr.u24()
				if err != nil {
					return nil, scope, trackErr(err)
				}
				events = append(events, trackEvent{Type: TempoChange, Tempo: tempo, Ticks: tick})
			default:
				if err := tr.skip(metaLen); err != nil {
					return nil, scope, trackErr(err)
				}
			}

		case status == statusSysEx || status == statusSysExEscape:
			sysexLen, err := tr.varLen()
			if err != nil {
				return nil, scope, err
			}
			if err := tr.skip(sysexLen); err != nil {
				return nil, scope, trackErr(err)
			}

		case status >= 0x80 && status < 0xf0:
			if err := decodeChannelEvent(tr, status, tick, &scope, opts, &events); err != nil {
				return nil, scope, err
			}

		default:
			// Either a status byte outside every known category, or a data
			// byte at the start of a track with no running status to reuse.
			return nil, scope, fmt.Errorf("%w: status 0x%02x", ErrUnknownEvent, status)
		}
	}

	if !sawEnd {
		return nil, scope, fmt.Errorf("%w: %d-byte chunk exhausted", ErrTrackUnderrun, length)
	}

	r.pos = end
	return events, scope, nil
}

// decodeChannelEvent handles one channel voice event. Program changes feed the
// piano channel detection; note events on the confirmed channel are emitted;
// everything else only consumes its fixed data width.
func decodeChannelEvent(tr *reader, status uint8, tick uint64, scope *trackScope, opts Options, events *[]trackEvent) error {
	category := status & 0xf0
	channel := status & 0x0f

	switch category {
	case statusProgramChange:
		program, err := tr.u8()
		if err != nil {
			return trackErr(err)
		}
		// First confirmation wins; later piano program changes are ignored.
		if !scope.confirmed && program >= opts.PianoProgramLow && program <= opts.PianoProgramHigh {
			scope.channel = channel
			scope.confirmed = true
		}

	case statusNoteOn, statusNoteOff:
		note, err := tr.u8()
		if err != nil {
			return trackErr(err)
		}
		velocity, err := tr.u8()
		if err != nil {
			return trackErr(err)
		}
		if !scope.confirmed || channel != scope.channel {
			return nil
		}
		typ := NoteOn
		if category == statusNoteOff || velocity == 0 {
			typ = NoteOff
		}
		*events = append(*events, trackEvent{Type: typ, Note: note, Ticks: tick})

	case statusPolyAftertouch, statusController, statusPitchBend:
		if err := tr.skip(2); err != nil {
			return trackErr(err)
		}

	case statusChannelAftertouch:
		if err := tr.skip(1); err != nil {
			return trackErr(err)
		}
	}
	return nil
}

// trackErr converts bound failures inside a track chunk into boundary errors:
// the sub-reader is clipped to the declared chunk length, so running out of
// bytes there means the event stream crossed the boundary.
func trackErr(err error) error {
	if errors.Is(err, ErrOutOfBounds) {
		return fmt.Errorf("%w: event data truncated", ErrTrackOverrun)
	}
	return err
}
