package cmd

import (
	"fmt"

	"github.com/adaptune/temper/midi"
	"github.com/adaptune/temper/solver"
	"github.com/adaptune/temper/tuning"
	"github.com/spf13/cobra"
)

var retuneConfig string

func init() {
	retuneCmd.Flags().StringVarP(&retuneConfig, "config", "c", "", "solver config file (required)")
	retuneCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(retuneCmd)
}

var retuneCmd = &cobra.Command{
	Use:   "retune <in.mid> <out.mid>",
	Short: "Retunes a MIDI file",
	Long:  `Rewrites a MIDI file with the pitch bends the solved tuning demands`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		retune(args[0], args[1])
	},
}

func retune(inPath, outPath string) {
	input := loadInput(retuneConfig)
	res, err := solver.Run(input)
	if err != nil {
		panic("Solve failed: " + err.Error())
	}

	mf, err := midi.ReadMidiFile(inPath)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	table := tuning.Table(res.NotesCents, input.CycleCents, input.BaseMidiNote)
	retuned := midi.Retune(mf, table, tuning.DefaultPitchBendRange)
	if err := retuned.WriteFile(outPath); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", outPath)
}
