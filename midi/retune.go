package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/adaptune/temper/tuning"
)

// Retune rewrites an SMF so every note start is preceded by the pitch bend
// its tuning-table deviation demands. Note-offs and non-note events pass
// through untouched; a note-on with velocity 0 is the running-status note-off
// encoding, not a start. The receiver's bend range must match rangeSemitones.
func Retune(mf *smf.SMF, table [128]float64, rangeSemitones float64) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	rng := tuning.ClampBendRange(rangeSemitones)

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		for _, evt := range track {
			var channel uint8
			var key uint8
			var velocity uint8
			if evt.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				bend := tuning.PitchBend(table[key], rng)
				pb := smf.Event{
					Delta:   evt.Delta,
					Message: smf.Message(midi.Pitchbend(channel, int16(bend-8192))),
				}
				newTrack = append(newTrack, pb)
				evt.Delta = 0
			}
			newTrack = append(newTrack, evt)
		}
		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
