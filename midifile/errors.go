package midifile

import "errors"

// Decoding failures. All of them are terminal for the current Parse call: the
// first one encountered is returned, possibly wrapped with position context,
// and no partial event list is produced.
var (
	// ErrHeaderNotFound means the buffer ran out before an MThd chunk was found.
	ErrHeaderNotFound = errors.New("midifile: MThd chunk not found")

	// ErrHeaderLength means the MThd chunk declared a length other than 6.
	ErrHeaderLength = errors.New("midifile: unexpected MThd chunk length")

	// ErrFormat means the header format field was not 0, 1 or 2.
	ErrFormat = errors.New("midifile: unsupported file format")

	// ErrTrackCount means a format 0 header declared more than one track.
	ErrTrackCount = errors.New("midifile: unexpected track count for format 0")

	// ErrTrackNotFound means the buffer ran out before the next MTrk chunk.
	ErrTrackNotFound = errors.New("midifile: MTrk chunk not found")

	// ErrTrackOverrun means event data crossed the declared track chunk boundary.
	ErrTrackOverrun = errors.New("midifile: event data crosses track boundary")

	// ErrTrackUnderrun means a track chunk ran out of bytes without an
	// end-of-track event.
	ErrTrackUnderrun = errors.New("midifile: missing end-of-track event")

	// ErrMalformedVarLen means a variable-length quantity was truncated or used
	// more than five encoded bytes.
	ErrMalformedVarLen = errors.New("midifile: malformed variable-length quantity")

	// ErrOutOfBounds means a read reached past the end of the input buffer.
	ErrOutOfBounds = errors.New("midifile: read past end of input")

	// ErrUnknownEvent means a status byte did not match any known event category.
	ErrUnknownEvent = errors.New("midifile: unknown event")
)
