package cmd

import (
	"fmt"
	"os"

	"github.com/adaptune/temper/solver"
	"github.com/adaptune/temper/tuning"
	"github.com/adaptune/temper/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var exportName string

func init() {
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "temper tuning", "tuning name embedded in the bulk dump")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <config.json>",
	Short: "Exports an MTS bulk dump",
	Long:  `Solves and writes a MIDI Tuning Standard bulk dump (.syx) plus a result snapshot`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		export(args[0])
	},
}

func export(path string) {
	input := loadInput(path)
	res, err := solver.Run(input)
	if err != nil {
		panic("Solve failed: " + err.Error())
	}

	util.EnsureOutputDir()
	id := uuid.New().String()

	table := tuning.Table(res.NotesCents, input.CycleCents, input.BaseMidiNote)
	sysex := tuning.BulkDumpSysex(0, exportName, table)
	syxPath := util.OutPath(id + ".syx")
	if err := os.WriteFile(syxPath, sysex, 0666); err != nil {
		panic("Could not write sysex file: " + err.Error())
	}

	snapshotPath := util.OutPath(id + ".dat")
	util.CreateBinary(snapshotPath, res)

	fmt.Printf("Wrote %v and %v\n", syxPath, snapshotPath)
}
