// Package midifile decodes Standard MIDI Files into a flat, time-ordered
// stream of piano events.
//
// The decoder walks every MTrk chunk of the file, detects the channel that
// carries the piano part (the first channel whose program change selects a
// General MIDI piano, programs 0-7 by default) and keeps only note-on,
// note-off and set-tempo events on it. Ticks from all tracks are merged,
// sorted and converted to millisecond deltas, ready for a playback loop:
//
//	events, err := midifile.Parse(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ev := range events {
//		// sleep ev.DeltaMillis (scaled by the current tempo), then
//		// press or release ev.Note
//	}
//
// Metrical deltas are reported as if a quarter note lasted one second, so the
// consumer scales each delta by currentTempo/500000 as tempo_change events go
// by. Timecode (SMPTE) deltas are absolute milliseconds.
//
// A parse call reads the caller-owned buffer exactly once, never modifies it
// and keeps no state between calls, so distinct buffers may be decoded
// concurrently.
package midifile

import "fmt"

// Options configures a parse call.
type Options struct {
	// PianoProgramLow and PianoProgramHigh bound the program-change values
	// (inclusive) that mark a channel as the piano channel. The first channel
	// that selects a program in this range is confirmed for the rest of its
	// scope: the whole file for formats 0 and 1, the current track for
	// format 2.
	PianoProgramLow  uint8
	PianoProgramHigh uint8
}

// DefaultOptions returns the conventional detection settings: programs 0
// through 7, the General MIDI piano family.
func DefaultOptions() Options {
	return Options{PianoProgramLow: 0, PianoProgramHigh: GMPianoProgramMax}
}

// Parse decodes the Standard MIDI File in data with DefaultOptions.
// See ParseWithOptions.
func Parse(data []byte) ([]Event, error) {
	return ParseWithOptions(data, DefaultOptions())
}

// ParseWithOptions decodes the Standard MIDI File in data and returns its
// piano note and tempo events, sorted by time, with millisecond deltas.
//
// The returned error, when non-nil, wraps one of the package's Err values and
// is terminal: the event list is nil and nothing can be salvaged from the
// buffer.
func ParseWithOptions(data []byte, opts Options) ([]Event, error) {
	r := newReader(data)

	header, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	var (
		events []trackEvent
		scope  trackScope
	)
	for track := uint16(0); track < header.TrackCount; track++ {
		scope = scopeForTrack(header.Format, scope)
		events, scope, err = decodeTrack(r, scope, opts, events)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", track, err)
		}
	}

	return translateTime(events, header.Division), nil
}
