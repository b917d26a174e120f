package model

import (
	"errors"
	"fmt"
)

// RatioSpec is a just-intonation interval target, e.g. 3/2.
type RatioSpec struct {
	N     int    `json:"n"`
	D     int    `json:"d"`
	Label string `json:"label"`
}

func (r RatioSpec) Validate() error {
	if r.N <= 0 || r.D <= 0 {
		return errors.New("ratio numerator and denominator must be positive")
	}
	return nil
}

// Key is the "n/d" form used by TargetWeightMap, independent of Label.
func (r RatioSpec) Key() string {
	return fmt.Sprintf("%v/%v", r.N, r.D)
}

// TargetWeightMap maps "n/d" keys to weights in [0,1].
type TargetWeightMap = map[string]float64
