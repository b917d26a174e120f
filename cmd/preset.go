package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/adaptune/temper/db"
	"github.com/adaptune/temper/model"
	"github.com/spf13/cobra"
)

var presetDescription string

func init() {
	presetCmd.AddCommand(presetGetCmd)
	presetPutCmd.Flags().StringVarP(&presetDescription, "description", "d", "", "preset description")
	presetCmd.AddCommand(presetPutCmd)
	rootCmd.AddCommand(presetCmd)
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manages tuning presets",
	Long:  `Manages tuning presets`,
}

var presetGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Prints a preset",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		presets, err := db.GetPresets(args)
		if err != nil {
			panic("Could not get preset: " + err.Error())
		}
		p, ok := presets[args[0]]
		if !ok {
			panic("No preset named " + args[0])
		}
		out, _ := json.MarshalIndent(p.Input, "", "  ")
		fmt.Printf("%v: %v\n%s\n", p.Name, p.Description, out)
	},
}

var presetPutCmd = &cobra.Command{
	Use:   "put <name> <config.json>",
	Short: "Stores a preset",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		input := loadInput(args[1])
		err := db.PutPreset(model.TuningPreset{
			Name:        args[0],
			Description: presetDescription,
			Input:       input,
		})
		if err != nil {
			panic("Could not put preset: " + err.Error())
		}
		fmt.Printf("Stored preset %v\n", args[0])
	},
}
