package midifile

import "fmt"

// GMPianoProgramMax is the last program number of the General MIDI piano
// family. Programs 0 through GMPianoProgramMax select a piano-like instrument
// and are what the default channel detection looks for.
// https://en.wikipedia.org/wiki/General_MIDI#Program_change_events
const GMPianoProgramMax = 7

var gmPianoFamily = []string{
	"Acoustic Grand Piano", "Bright Acoustic Piano", "Electric Grand Piano", "Honky-tonk Piano",
	"Electric Piano 1", "Electric Piano 2", "Harpsichord", "Clavinet",
}

// GMProgramName returns the General MIDI instrument name for piano-family
// programs, and a numeric placeholder for everything else.
func GMProgramName(program uint8) string {
	if int(program) < len(gmPianoFamily) {
		return gmPianoFamily[program]
	}
	return fmt.Sprintf("Program %d", program)
}
