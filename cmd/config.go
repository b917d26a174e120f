package cmd

import (
	"encoding/json"
	"os"

	"github.com/adaptune/temper/constants"
	"github.com/adaptune/temper/model"
)

func loadInput(path string) model.SolverInput {
	dat, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read config file: " + err.Error())
	}

	var input model.SolverInput
	err = json.Unmarshal(dat, &input)
	if err != nil {
		panic("Could not parse config file: " + err.Error())
	}
	return applyDefaults(input)
}

// applyDefaults fills the zero values every entry point (file config, HTTP,
// RPC) agrees on.
func applyDefaults(input model.SolverInput) model.SolverInput {
	if input.CycleCents == 0 {
		input.CycleCents = constants.NominalCycleCents
	}
	if input.ScaleSize == 0 {
		input.ScaleSize = 12
	}
	if input.BaseFrequencyHz == 0 {
		input.BaseFrequencyHz = 261.625565 // middle C
	}
	if input.BaseMidiNote == 0 {
		input.BaseMidiNote = 60
	}
	return input
}
