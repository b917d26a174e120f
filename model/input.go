package model

// Anchor is a labeled reference ratio used by octave weighting. Axis holds the
// anchor's affinity for each of the three blend axes, Base its floor weight.
type Anchor struct {
	ID    string     `json:"id"`
	Ratio RatioSpec  `json:"ratio"`
	Axis  [3]float64 `json:"axis"`
	Base  float64    `json:"base"`
}

type OctaWeighting struct {
	Enabled bool    `json:"enabled"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`

	// Targets overrides the built-in anchor set when non-empty.
	Targets []Anchor `json:"targets,omitempty"`
}

type KeySpecificity struct {
	Tonic int `json:"tonic"`
	Flats int `json:"flats"`
}

type WolfPlacement string

const (
	WolfAuto   WolfPlacement = "auto"
	WolfManual WolfPlacement = "manual"
)

// SolverInput is the full configuration for one solve. It is never mutated.
type SolverInput struct {
	ScaleSize       int             `json:"scaleSize"`
	CycleCents      float64         `json:"cycleCents"`
	Targets         []RatioSpec     `json:"targets"`
	TargetWeights   TargetWeightMap `json:"targetWeights,omitempty"`
	OctaWeighting   OctaWeighting   `json:"octaWeighting"`
	OctaveStiffness float64         `json:"octaveStiffness"`
	KeySpecificity  KeySpecificity  `json:"keySpecificity"`
	WolfPlacement   WolfPlacement   `json:"wolfPlacement"`
	WolfEdgeIndex   int             `json:"wolfEdgeIndex"`
	BaseMidiNote    int             `json:"baseMidiNote"`
	BaseFrequencyHz float64         `json:"baseFrequencyHz"`
}
