package cmd

import (
	"github.com/spf13/cobra"
)

var compact bool

var rootCmd = &cobra.Command{
	Use:   "dualcalc",
	Short: "Forward-mode derivative calculator",
	Long: `dualcalc evaluates elementary functions and their exact first
derivatives using dual-number arithmetic.

A function f applied to the dual seed (x, 1) yields f(x) in the real part
and f'(x) in the derivative part.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&compact, "compact", "c", false, "compact number formatting")
}
