package tuning

import (
	"fmt"
	"math"

	"gitlab.com/gomidi/midi/v2"
)

// MIDI Tuning Standard frequency data: semitone number plus a 14-bit fraction
// in units of 100/16384 cents.
func frequencyData(note int, deviationCents float64) (xx, yy, zz byte) {
	target := float64(note) + deviationCents/100
	if target < 0 {
		target = 0
	}
	if target > 127 {
		target = 127
	}
	semitone := math.Floor(target)
	frac := int(math.Round((target - semitone) * 16384))
	if frac > 16383 {
		frac = 16383
	}
	return byte(semitone), byte((frac >> 7) & 0x7f), byte(frac & 0x7f)
}

// SingleNoteSysex is the realtime MTS single-note change for one key, applied
// by receivers without retriggering held notes.
func SingleNoteSysex(program, note int, deviationCents float64) midi.Message {
	xx, yy, zz := frequencyData(note, deviationCents)
	payload := []byte{0x7f, 0x7f, 0x08, 0x02, byte(program & 0x7f), 0x01, byte(note & 0x7f), xx, yy, zz}
	return midi.SysEx(payload)
}

// BulkDumpSysex encodes a full 128-entry table as a non-realtime MTS bulk
// dump for the given tuning program, including the checksum byte.
func BulkDumpSysex(program int, name string, table [128]float64) []byte {
	padded := fmt.Sprintf("%-16s", name)
	if len(padded) > 16 {
		padded = padded[:16]
	}

	data := []byte{0x7e, 0x7f, 0x08, 0x01, byte(program & 0x7f)}
	for i := 0; i < 16; i++ {
		data = append(data, padded[i]&0x7f)
	}
	for note := 0; note < 128; note++ {
		xx, yy, zz := frequencyData(note, table[note])
		data = append(data, xx, yy, zz)
	}

	var checksum byte
	for _, b := range data {
		checksum ^= b
	}
	data = append(data, checksum&0x7f)

	res := append([]byte{0xf0}, data...)
	return append(res, 0xf7)
}
