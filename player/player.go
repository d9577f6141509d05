// Package player replays a decoded piano event stream in real time.
//
// The decoder reports metrical time deltas as if a quarter note lasted one
// second; the player rescales every delta by the tempo currently in effect
// (tempo_change events travel in the stream itself) and toggles key state on
// a Display between sleeps. Timecode files carry absolute deltas and are
// played as-is.
package player

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/artemneskorodov/piano/midifile"
)

// defaultTempo is the MIDI default of 120 beats per minute, expressed in
// microseconds per quarter note. It applies until the stream's first tempo
// event.
const defaultTempo = 500000

// Display receives key state changes as playback progresses.
type Display interface {
	// KeyDown marks a note as sounding.
	KeyDown(note uint8)
	// KeyUp marks a note as released.
	KeyUp(note uint8)
}

// Option configures a Player.
type Option func(*Player)

// WithLogger sets the logger used for playback diagnostics. The default
// discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(p *Player) { p.log = log }
}

// WithSleep replaces the sleep function, so tests can run playback without
// waiting.
func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Player) { p.sleep = sleep }
}

// Player walks an event list in order, sleeping each event's delta before
// acting on it.
type Player struct {
	display Display
	log     *zap.Logger
	sleep   func(time.Duration)

	tempo   uint32
	pressed map[uint8]bool
}

// New creates a Player that reports key state to display.
func New(display Display, opts ...Option) *Player {
	p := &Player{
		display: display,
		log:     zap.NewNop(),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play replays events front to back. When metrical is true each delta is
// scaled by currentTempo/500000 before sleeping; timecode deltas are already
// absolute milliseconds and are used untouched. Keys still held when the
// stream ends are released, lowest note first.
func (p *Player) Play(events []midifile.Event, metrical bool) {
	p.tempo = defaultTempo
	p.pressed = make(map[uint8]bool)

	p.log.Info("playback started",
		zap.Int("events", len(events)),
		zap.Bool("metrical", metrical),
	)

	for _, ev := range events {
		delay := ev.DeltaMillis
		if metrical {
			delay *= float64(p.tempo) / defaultTempo
		}
		if delay > 0 {
			p.sleep(time.Duration(delay * float64(time.Millisecond)))
		}

		switch ev.Type {
		case midifile.TempoChange:
			p.tempo = ev.Tempo
			p.log.Debug("tempo change", zap.Uint32("usec_per_quarter", ev.Tempo))
		case midifile.NoteOn:
			p.pressed[ev.Note] = true
			p.display.KeyDown(ev.Note)
		case midifile.NoteOff:
			delete(p.pressed, ev.Note)
			p.display.KeyUp(ev.Note)
		}
	}

	p.releaseAll()
	p.log.Info("playback finished")
}

// releaseAll lifts every key still held, so the display never ends on a
// stuck note when a file omits its final note-offs.
func (p *Player) releaseAll() {
	notes := make([]uint8, 0, len(p.pressed))
	for note := range p.pressed {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })
	for _, note := range notes {
		p.display.KeyUp(note)
	}
	p.pressed = make(map[uint8]bool)
}
