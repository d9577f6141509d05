package midifile

import "encoding/binary"

// Test fixture builders. Files are assembled chunk by chunk so each test can
// state its event stream as plain bytes next to the assertions.

// chunk builds a tagged chunk with the given declared length. Most callers
// want the real payload length; tests for overrun and underrun pass a wrong
// one on purpose.
func chunk(tag string, declaredLen uint32, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	out = append(out, tag...)
	out = binary.BigEndian.AppendUint32(out, declaredLen)
	return append(out, payload...)
}

// headerChunk returns an MThd chunk for the given format, track count and raw
// time division value.
func headerChunk(format, ntracks, division uint16) []byte {
	payload := make([]byte, 0, headerChunkLength)
	payload = binary.BigEndian.AppendUint16(payload, format)
	payload = binary.BigEndian.AppendUint16(payload, ntracks)
	payload = binary.BigEndian.AppendUint16(payload, division)
	return chunk(headerTag, headerChunkLength, payload)
}

// trackChunk wraps an event stream in an MTrk chunk with its real length.
func trackChunk(events ...byte) []byte {
	return chunk(trackTag, uint32(len(events)), events)
}

// endOfTrack is the terminating meta event every well-formed track carries.
var endOfTrack = []byte{0x00, 0xff, 0x2f, 0x00}

// smfBytes concatenates chunks into a complete file buffer.
func smfBytes(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
