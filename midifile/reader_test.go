package midifile

import (
	"errors"
	"testing"
)

func TestReaderBigEndian(t *testing.T) {
	r := newReader([]byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x11, 0x22})

	if v, err := r.u8(); err != nil || v != 0x12 {
		t.Errorf("u8() = %#x, %v; want 0x12, nil", v, err)
	}
	if v, err := r.u16(); err != nil || v != 0x3456 {
		t.Errorf("u16() = %#x, %v; want 0x3456, nil", v, err)
	}
	if v, err := r.u24(); err != nil || v != 0x789abc {
		t.Errorf("u24() = %#x, %v; want 0x789abc, nil", v, err)
	}
	if v, err := r.u32(); err != nil || v != 0xdef01122 {
		t.Errorf("u32() = %#x, %v; want 0xdef01122, nil", v, err)
	}
	if r.remaining() != 0 {
		t.Errorf("remaining() = %d after consuming everything", r.remaining())
	}
}

func TestReaderOutOfBounds(t *testing.T) {
	r := newReader([]byte{0x01})

	if _, err := r.u16(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("u16() on 1-byte buffer: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := r.u8(); err != nil {
		t.Errorf("u8() after failed u16(): err = %v, cursor should not have moved", err)
	}
	if _, err := r.u8(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("u8() on empty buffer: err = %v, want ErrOutOfBounds", err)
	}
	if err := r.skip(1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("skip(1) on empty buffer: err = %v, want ErrOutOfBounds", err)
	}
}

func TestVarLen(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		want  uint64
		bytes int
	}{
		{"zero", []byte{0x00}, 0, 1},
		{"single byte", []byte{0x40}, 0x40, 1},
		{"single byte max", []byte{0x7f}, 0x7f, 1},
		{"two bytes", []byte{0x81, 0x00}, 0x80, 2},
		{"two bytes mixed", []byte{0xc0, 0x00}, 0x2000, 2},
		{"four bytes max", []byte{0xff, 0xff, 0xff, 0x7f}, 0x0fffffff, 4},
		{"trailing data ignored", []byte{0x05, 0x99}, 0x05, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReader(tt.data)
			got, err := r.varLen()
			if err != nil {
				t.Fatalf("varLen(% x) error: %v", tt.data, err)
			}
			if got != tt.want {
				t.Errorf("varLen(% x) = %#x, want %#x", tt.data, got, tt.want)
			}
			if r.pos != tt.bytes {
				t.Errorf("varLen(% x) consumed %d bytes, want %d", tt.data, r.pos, tt.bytes)
			}
		})
	}
}

func TestVarLenMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty buffer", []byte{}},
		{"truncated", []byte{0x81}},
		{"truncated long", []byte{0xff, 0xff, 0xff}},
		{"continuation past cap", []byte{0x81, 0x81, 0x81, 0x81, 0x81, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReader(tt.data)
			if _, err := r.varLen(); !errors.Is(err, ErrMalformedVarLen) {
				t.Errorf("varLen(% x) err = %v, want ErrMalformedVarLen", tt.data, err)
			}
		})
	}
}

func TestPeekTag(t *testing.T) {
	r := newReader([]byte("MThd\x00\x00\x00\x06"))

	tag, err := r.peekTag()
	if err != nil {
		t.Fatalf("peekTag() error: %v", err)
	}
	if tag != "MThd" {
		t.Errorf("peekTag() = %q, want %q", tag, "MThd")
	}
	if r.pos != 0 {
		t.Errorf("peekTag() moved the cursor to %d", r.pos)
	}

	short := newReader([]byte("MTh"))
	if _, err := short.peekTag(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("peekTag() on short buffer: err = %v, want ErrOutOfBounds", err)
	}
}

func TestUnread(t *testing.T) {
	r := newReader([]byte{0x90, 0x3c})
	if _, err := r.u8(); err != nil {
		t.Fatalf("u8() error: %v", err)
	}
	r.unread()
	v, err := r.u8()
	if err != nil || v != 0x90 {
		t.Errorf("u8() after unread() = %#x, %v; want 0x90, nil", v, err)
	}
}
