package midifile

import "fmt"

// maxVarLenBytes caps variable-length quantities at five encoded bytes, the
// widest encoding the SMF format needs for a 32-bit value. The cap keeps a
// corrupted continuation bit from turning into an unbounded scan.
const maxVarLenBytes = 5

// reader is a bounds-checked cursor over the input buffer. Every read checks
// the remaining length first and reports ErrOutOfBounds instead of touching
// memory past the end. The buffer itself is never modified.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

// be reads an n-byte big-endian unsigned integer, 1 <= n <= 4.
func (r *reader) be(n int) (uint32, error) {
	if r.remaining() < n {
		return 0, ErrOutOfBounds
	}
	var v uint32
	for i := 0; i < n; i++ {
		v = v<<8 | uint32(r.data[r.pos+i])
	}
	r.pos += n
	return v, nil
}

func (r *reader) u8() (uint8, error) {
	v, err := r.be(1)
	return uint8(v), err
}

func (r *reader) u16() (uint16, error) {
	v, err := r.be(2)
	return uint16(v), err
}

func (r *reader) u24() (uint32, error) {
	return r.be(3)
}

func (r *reader) u32() (uint32, error) {
	return r.be(4)
}

// varLen reads a MIDI variable-length quantity: 7 bits per byte, continuation
// bit 0x80 on every byte except the last, assembled big-endian. Encodings
// longer than maxVarLenBytes and encodings cut off by the end of the buffer
// both report ErrMalformedVarLen.
func (r *reader) varLen() (uint64, error) {
	var v uint64
	for i := 0; i < maxVarLenBytes; i++ {
		if r.remaining() < 1 {
			return 0, fmt.Errorf("%w: truncated after %d bytes", ErrMalformedVarLen, i)
		}
		b := r.data[r.pos]
		r.pos++
		v = v<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: continuation bit set past %d bytes", ErrMalformedVarLen, maxVarLenBytes)
}

// skip advances the cursor n bytes without reading them.
func (r *reader) skip(n uint64) error {
	if uint64(r.remaining()) < n {
		return ErrOutOfBounds
	}
	r.pos += int(n)
	return nil
}

// unread steps the cursor back one byte, so a byte consumed as a status
// candidate can be read again as event data.
func (r *reader) unread() {
	if r.pos > 0 {
		r.pos--
	}
}

// peekTag returns the next four bytes as a chunk tag without moving the cursor.
func (r *reader) peekTag() (string, error) {
	if r.remaining() < 4 {
		return "", ErrOutOfBounds
	}
	return string(r.data[r.pos : r.pos+4]), nil
}
