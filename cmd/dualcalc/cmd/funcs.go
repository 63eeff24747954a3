package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forward-ml/dual/dual"
)

var funcsCmd = &cobra.Command{
	Use:   "funcs",
	Short: "List the functions with registered derivative rules",
	Run: func(c *cobra.Command, _ []string) {
		for _, name := range dual.NewRegistry().SupportedFuncs() {
			fmt.Fprintln(c.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(funcsCmd)
}
