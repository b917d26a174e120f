package cmd

import (
	"fmt"
	"math"

	"github.com/adaptune/temper/model"
	"github.com/adaptune/temper/solver"
	"github.com/adaptune/temper/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <config.json>",
	Short: "Creates an interval-error report",
	Long:  `Creates an interval-error report`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		report(args[0])
	},
}

type kindReport struct {
	count        int
	meanAbsError float64
	worstError   float64
	worstI       int
	worstJ       int
	skeletonRows int
}

func analyzeIntervals(intervals []model.IntervalError) map[model.IntervalKind]kindReport {
	res := make(map[model.IntervalKind]kindReport)
	for _, ie := range intervals {
		r := res[ie.Kind]
		r.count += 1
		r.meanAbsError += math.Abs(ie.ErrorCents)
		if math.Abs(ie.ErrorCents) > math.Abs(r.worstError) {
			r.worstError = ie.ErrorCents
			r.worstI = ie.I
			r.worstJ = ie.J
		}
		if ie.IsSkeleton {
			r.skeletonRows += 1
		}
		res[ie.Kind] = r
	}
	for k, r := range res {
		if r.count > 0 {
			r.meanAbsError /= float64(r.count)
		}
		res[k] = r
	}
	return res
}

func report(path string) {
	input := loadInput(path)
	res, err := solver.Run(input)
	if err != nil {
		panic("Solve failed: " + err.Error())
	}

	byKind := analyzeIntervals(res.Intervals)
	for _, kind := range util.GetKeys(byKind) {
		r := byKind[kind]
		fmt.Printf("%v: %v rows, mean abs error %.4f cents\n", kind, r.count, r.meanAbsError)
		fmt.Printf("  worst: %+.4f cents at degrees %v -> %v\n", r.worstError, r.worstI, r.worstJ)
		fmt.Printf("  skeleton rows: %v\n", r.skeletonRows)
	}
}
