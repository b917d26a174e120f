package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "temper",
	Short: "Adaptive temperament solver",
	Long:  `Solves a regular temperament's generator and period from weighted just-intonation targets and maps it onto MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
