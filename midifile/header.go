package midifile

import "fmt"

const (
	headerTag = "MThd"
	trackTag  = "MTrk"

	// headerChunkLength is the only payload length an MThd chunk may declare.
	headerChunkLength = 6
)

// TimeDivision is the raw time-division field of the file header. Bit 15
// selects the timing scheme: clear for metrical timing (ticks are fractions
// of a quarter note), set for SMPTE timecode (ticks are fractions of a frame).
type TimeDivision uint16

// Metrical reports whether delta ticks are fractions of a quarter note.
func (d TimeDivision) Metrical() bool {
	return d&0x8000 == 0
}

// TicksPerQuarterNote returns the metrical resolution, or 0 for timecode
// divisions.
func (d TimeDivision) TicksPerQuarterNote() uint16 {
	if !d.Metrical() {
		return 0
	}
	return uint16(d) & 0x7fff
}

// SMPTETimeCode returns the frames per second and the subframe resolution, or
// 0, 0 for metrical divisions. The fps byte is stored as a negative two's
// complement value and is returned as a positive count.
func (d TimeDivision) SMPTETimeCode() (fps, subframes uint8) {
	if d.Metrical() {
		return 0, 0
	}
	return uint8(-int8(d >> 8)), uint8(d)
}

func (d TimeDivision) String() string {
	if d.Metrical() {
		return fmt.Sprintf("%d ticks per quarter note", d.TicksPerQuarterNote())
	}
	fps, subframes := d.SMPTETimeCode()
	return fmt.Sprintf("%d frames per second, %d subframes per frame", fps, subframes)
}

// Header is the decoded MThd chunk.
type Header struct {
	Format     uint16       // 0 single track, 1 simultaneous tracks, 2 independent tracks
	TrackCount uint16       // number of MTrk chunks that follow
	Division   TimeDivision // tick-to-time mapping for the whole file
}

// ReadHeader decodes just the MThd chunk of a Standard MIDI File, without
// touching its tracks.
func ReadHeader(data []byte) (Header, error) {
	return decodeHeader(newReader(data))
}

// decodeHeader scans to the MThd chunk, skipping unrecognized chunks by their
// declared length, and decodes its six payload bytes.
func decodeHeader(r *reader) (Header, error) {
	if err := seekChunk(r, headerTag, ErrHeaderNotFound); err != nil {
		return Header{}, err
	}

	length, err := r.u32()
	if err != nil {
		return Header{}, fmt.Errorf("reading MThd length: %w", err)
	}
	if length != headerChunkLength {
		return Header{}, fmt.Errorf("%w: got %d, want %d", ErrHeaderLength, length, headerChunkLength)
	}

	var h Header
	if h.Format, err = r.u16(); err != nil {
		return Header{}, fmt.Errorf("reading format: %w", err)
	}
	if h.Format > 2 {
		return Header{}, fmt.Errorf("%w: format %d", ErrFormat, h.Format)
	}

	if h.TrackCount, err = r.u16(); err != nil {
		return Header{}, fmt.Errorf("reading track count: %w", err)
	}
	if h.Format == 0 && h.TrackCount != 1 {
		return Header{}, fmt.Errorf("%w: format 0 declares %d tracks", ErrTrackCount, h.TrackCount)
	}

	division, err := r.u16()
	if err != nil {
		return Header{}, fmt.Errorf("reading time division: %w", err)
	}
	h.Division = TimeDivision(division)
	return h, nil
}

// seekChunk advances the cursor to the next chunk tagged tag, stepping over
// unrecognized chunks by tag and declared length. On success the cursor sits
// on the chunk's length field. notFound is reported when the buffer runs out
// first.
func seekChunk(r *reader, tag string, notFound error) error {
	for {
		got, err := r.peekTag()
		if err != nil {
			return notFound
		}
		r.skip(4)
		if got == tag {
			return nil
		}
		length, err := r.u32()
		if err != nil {
			return notFound
		}
		if err := r.skip(uint64(length)); err != nil {
			return notFound
		}
	}
}
