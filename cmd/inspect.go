package cmd

import (
	"fmt"

	"github.com/adaptune/temper/model"
	"github.com/adaptune/temper/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot.dat>",
	Short: "Inspects a result snapshot",
	Long:  `Inspects a result snapshot written by export`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	res := util.ReadBinaryOrPanic[model.ModeAResult](path)
	fmt.Printf("generator: %v\n", res.GeneratorCents)
	if res.OptimizedPeriodCents != nil {
		fmt.Printf("period: %v\n", *res.OptimizedPeriodCents)
	}
	for i, c := range res.NotesCents {
		fmt.Printf("degree %v: %v\n", i, c)
	}
	fmt.Printf("interval rows: %v\n", len(res.Intervals))
}
