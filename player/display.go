package player

import (
	"fmt"
	"io"
)

// Key range of a standard 88-key piano, A0 through C8.
const (
	lowestKey  = 21
	highestKey = 108
)

// TerminalDisplay renders key state as a single line of text that rewrites
// itself in place, one cell per key: '#' for a sounding key, '-' for a
// silent one.
type TerminalDisplay struct {
	w    io.Writer
	keys [highestKey - lowestKey + 1]bool
}

// NewTerminalDisplay creates a display covering the 88 keys of a standard
// piano, writing to w.
func NewTerminalDisplay(w io.Writer) *TerminalDisplay {
	return &TerminalDisplay{w: w}
}

// KeyDown marks a note as sounding and redraws the row.
func (d *TerminalDisplay) KeyDown(note uint8) {
	d.set(note, true)
}

// KeyUp marks a note as released and redraws the row.
func (d *TerminalDisplay) KeyUp(note uint8) {
	d.set(note, false)
}

func (d *TerminalDisplay) set(note uint8, down bool) {
	// Notes outside the keyboard are valid MIDI but have no key to light.
	if note < lowestKey || note > highestKey {
		return
	}
	d.keys[note-lowestKey] = down
	d.render()
}

func (d *TerminalDisplay) render() {
	row := make([]byte, len(d.keys))
	for i, down := range d.keys {
		if down {
			row[i] = '#'
		} else {
			row[i] = '-'
		}
	}
	fmt.Fprintf(d.w, "\r%s", row)
}
