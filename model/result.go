package model

type IntervalKind string

const (
	KindP5 IntervalKind = "P5"
	KindM3 IntervalKind = "M3"
	Kindm3 IntervalKind = "m3"
)

type IntervalError struct {
	I           int          `json:"i"`
	J           int          `json:"j"`
	Step        int          `json:"step"`
	Target      RatioSpec    `json:"target"`
	TargetCents float64      `json:"targetCents"`
	ActualCents float64      `json:"actualCents"`
	ErrorCents  float64      `json:"errorCents"`
	Weight      float64      `json:"weight"`
	Kind        IntervalKind `json:"kind"`
	IsSkeleton  bool         `json:"isSkeleton"`
	KeyTonic    *int         `json:"keyTonic,omitempty"`
	AnchorID    string       `json:"anchorId,omitempty"`
}

// ModeAResult is the solved scale. NotesCents is ascending with
// NotesCents[0] == 0. The period fields are only set by the rank-2 strategy.
type ModeAResult struct {
	NotesCents           []float64       `json:"notesCents"`
	GeneratorCents       float64         `json:"generatorCents"`
	Intervals            []IntervalError `json:"intervals"`
	OptimizedPeriodCents *float64        `json:"optimizedPeriodCents,omitempty"`
	PeriodStretchCents   *float64        `json:"periodStretchCents,omitempty"`
	PeriodStretchWarning bool            `json:"periodStretchWarning"`
	CentsAbsolute        []float64       `json:"centsAbsolute,omitempty"`
}
