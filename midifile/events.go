package midifile

import "fmt"

// EventType identifies the kind of a decoded event.
type EventType int

const (
	// NoteOn is a key press on the piano channel.
	NoteOn EventType = iota + 1
	// NoteOff is a key release on the piano channel. Note-on events with
	// velocity 0 are reported as NoteOff.
	NoteOff
	// TempoChange is a set-tempo meta event.
	TempoChange
)

func (t EventType) String() string {
	switch t {
	case NoteOn:
		return "note_on"
	case NoteOff:
		return "note_off"
	case TempoChange:
		return "tempo_change"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// MarshalText makes event types render as their names in JSON output.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event is a single decoded event in its final, translated form.
//
// Exactly one payload field is meaningful: Note for NoteOn and NoteOff, Tempo
// for TempoChange. DeltaMillis is the time to wait after the previous event in
// the list; the first event's delta is measured from time zero.
type Event struct {
	Type        EventType `json:"type"`
	Note        uint8     `json:"note"`     // MIDI note number, NoteOn/NoteOff only
	Tempo       uint32    `json:"tempo"`    // microseconds per quarter note, TempoChange only
	DeltaMillis float64   `json:"delta_ms"` // delta from the previous event in milliseconds
}

// trackEvent is the decode-phase shape of an event: the same payload as Event,
// stamped with the absolute tick it occurred at instead of a time delta.
// Ticks are dropped once the merged list has been sorted and translated.
type trackEvent struct {
	Type  EventType
	Note  uint8
	Tempo uint32
	Ticks uint64
}
