package cmd

import (
	"fmt"

	"github.com/adaptune/temper/cents"
	"github.com/adaptune/temper/solver"
	"github.com/adaptune/temper/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(solveCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve <config.json>",
	Short: "Solves a temperament",
	Long:  `Solves a temperament and prints the cents-per-degree table`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		solve(args[0])
	},
}

func solve(path string) {
	input := loadInput(path)
	res, err := solver.Run(input)
	if err != nil {
		panic("Solve failed: " + err.Error())
	}

	fmt.Printf("generator: %.4f cents\n", res.GeneratorCents)
	if res.OptimizedPeriodCents != nil {
		fmt.Printf("period: %.4f cents (stretch %+.4f)\n", *res.OptimizedPeriodCents, *res.PeriodStretchCents)
		if res.PeriodStretchWarning {
			fmt.Println("WARNING: period stretch exceeds 10 cents")
		}
	}

	freqs := tuning.NotesToFrequencies(res.NotesCents, input.BaseFrequencyHz)
	for i, c := range res.NotesCents {
		name := cents.DegreeName(i, input.ScaleSize)
		fmt.Printf("%3v %-4s %10.4f cents %12.4f Hz\n", i, name, c, freqs[i])
	}
}
