package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/adaptune/temper/tuning"
)

func retuneTable() [128]float64 {
	var table [128]float64
	table[60] = 20
	table[64] = -40
	return table
}

func TestRetuneBendsBeforeNoteStarts(t *testing.T) {
	assert := assert.New(t)

	var mf smf.SMF
	mf.Tracks = []smf.Track{{
		{Delta: 0, Message: smf.Message(midi.NoteOn(0, 60, 100))},
		{Delta: 120, Message: smf.Message(midi.NoteOn(0, 64, 100))},
		{Delta: 240, Message: smf.Message(midi.NoteOff(0, 60))},
	}}

	res := Retune(&mf, retuneTable(), 48)
	track := res.Tracks[0]
	assert.Len(track, 5)

	var ch uint8
	var rel int16
	var abs uint16

	// bend carries the note's delta, the note follows immediately
	assert.True(midi.Message(track[0].Message).GetPitchBend(&ch, &rel, &abs))
	assert.Equal(uint32(0), track[0].Delta)
	assert.Equal(int16(tuning.PitchBend(20, 48)-8192), rel)
	assert.True(track[1].Message.Is(midi.NoteOnMsg))
	assert.Equal(uint32(0), track[1].Delta)

	assert.True(midi.Message(track[2].Message).GetPitchBend(&ch, &rel, &abs))
	assert.Equal(uint32(120), track[2].Delta)
	assert.Equal(int16(tuning.PitchBend(-40, 48)-8192), rel)

	// the note-off passes through with its delta intact
	assert.True(track[4].Message.Is(midi.NoteOffMsg))
	assert.Equal(uint32(240), track[4].Delta)
}

func TestRetunePassesVelocityZeroNoteOffThrough(t *testing.T) {
	assert := assert.New(t)

	// vel-0 note-on is the running-status note-off; bending before it would
	// detune whatever is still sounding on the channel
	var mf smf.SMF
	mf.Tracks = []smf.Track{{
		{Delta: 0, Message: smf.Message(midi.NoteOn(0, 60, 100))},
		{Delta: 120, Message: smf.Message(midi.NoteOn(0, 64, 100))},
		{Delta: 120, Message: smf.Message(midi.NoteOn(0, 64, 0))},
	}}

	res := Retune(&mf, retuneTable(), 48)
	track := res.Tracks[0]

	var bends int
	for _, evt := range track {
		if evt.Message.Is(midi.PitchBendMsg) {
			bends += 1
		}
	}
	assert.Equal(2, bends)

	// the release keeps its position and velocity
	last := track[len(track)-1]
	var channel, key, velocity uint8
	assert.True(last.Message.GetNoteOn(&channel, &key, &velocity))
	assert.Equal(uint8(64), key)
	assert.Equal(uint8(0), velocity)
	assert.Equal(uint32(120), last.Delta)
	assert.False(track[len(track)-2].Message.Is(midi.PitchBendMsg))
}
