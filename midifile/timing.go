package midifile

import "sort"

// translateTime sorts the merged event list by absolute tick and rewrites each
// event's time as the millisecond delta from the event before it. The first
// event's delta is measured from tick zero.
//
// The sort must be stable: simultaneous events are common (chords, a tempo
// change on the same tick as a note) and their encounter order is part of the
// output contract.
func translateTime(events []trackEvent, division TimeDivision) []Event {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Ticks < events[j].Ticks
	})

	msPerTick := division.millisPerTick()

	out := make([]Event, len(events))
	var last uint64
	for i, ev := range events {
		delta := ev.Ticks - last
		last = ev.Ticks
		out[i] = Event{
			Type:        ev.Type,
			Note:        ev.Note,
			Tempo:       ev.Tempo,
			DeltaMillis: float64(delta) * msPerTick,
		}
	}
	return out
}

// millisPerTick maps one tick to milliseconds. Metrical deltas are scaled as
// if a quarter note lasted one second; the playback consumer multiplies by
// current tempo over 500000 to get real time. Timecode deltas are absolute
// and need no further scaling.
func (d TimeDivision) millisPerTick() float64 {
	if d.Metrical() {
		return 1000.0 / float64(d.TicksPerQuarterNote())
	}
	fps, subframes := d.SMPTETimeCode()
	return 1000.0 / (float64(fps) * float64(subframes))
}
