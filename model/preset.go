package model

// TuningPreset is a named solver configuration stored in the preset table.
type TuningPreset struct {
	Name        string
	Description string
	Input       SolverInput
}
