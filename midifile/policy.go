package midifile

// scopeForTrack builds the decoder scope for the next track from the scope the
// previous track finished with, according to the header format.
//
// Format 0 files have a single track, so the scope passes straight through.
// Format 1 tracks play simultaneously: every track counts ticks from zero
// again and the merged events are ordered purely by tick value, but a piano
// channel confirmed in an earlier track stays confirmed, and later tracks are
// still parsed in full so their notes on that channel are picked up. Format 2
// tracks are independent pieces: both the tick origin and the channel
// confirmation start fresh on every track.
func scopeForTrack(format uint16, prev trackScope) trackScope {
	switch format {
	case 1:
		return trackScope{channel: prev.channel, confirmed: prev.confirmed}
	case 2:
		return trackScope{}
	default:
		return prev
	}
}
