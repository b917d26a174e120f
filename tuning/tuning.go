// Package tuning converts solved scales into playable form: frequencies, a
// 128-entry MIDI tuning table, and 14-bit pitch bend values.
package tuning

import (
	"math"
)

// DefaultPitchBendRange is the assumed receiver bend range in semitones. It
// must match the target instrument.
const DefaultPitchBendRange = 48.0

// NotesToFrequencies converts per-degree cents into absolute frequencies from
// the base frequency.
func NotesToFrequencies(notesCents []float64, baseFrequencyHz float64) []float64 {
	res := make([]float64, len(notesCents))
	for i, c := range notesCents {
		res[i] = baseFrequencyHz * math.Pow(2, c/1200)
	}
	return res
}

// ClampBendRange keeps a pitch bend range inside what receivers accept.
func ClampBendRange(semitones float64) float64 {
	if semitones < 1 {
		return 1
	}
	if semitones > 96 {
		return 96
	}
	return semitones
}

// PitchBend maps a cents deviation to a 14-bit pitch wheel value, 8192
// center, clamped to [0, 16383].
func PitchBend(cents, rangeSemitones float64) int {
	if rangeSemitones <= 0 {
		return 8192
	}
	normalized := cents / (rangeSemitones * 100)
	value := int(8192 + normalized*8192)
	if value < 0 {
		value = 0
	}
	if value > 16383 {
		value = 16383
	}
	return value
}

// Table tiles the N-degree scale across all 128 MIDI notes from the base
// note, returning each note's cents deviation from 12-TET.
func Table(notesCents []float64, cycleCents float64, baseMidiNote int) [128]float64 {
	var table [128]float64
	n := len(notesCents)
	if n == 0 {
		return table
	}
	for note := 0; note < 128; note++ {
		rel := note - baseMidiNote
		oct := rel / n
		deg := rel % n
		if deg < 0 {
			deg += n
			oct--
		}
		target := notesCents[deg] + float64(oct)*cycleCents
		table[note] = target - float64(rel)*100
	}
	return table
}
