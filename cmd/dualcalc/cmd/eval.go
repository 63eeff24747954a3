package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/forward-ml/dual/dual"
)

var evalCmd = &cobra.Command{
	Use:   "eval <func> <x>",
	Short: "Evaluate a function and its derivative at a point",
	Long: `Evaluate the named elementary function at x, reporting both the
value and the exact first derivative.

Example:
  dualcalc eval sin 1.5708
  dualcalc eval log 2 --compact`,
	Args: cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		name := args[0]
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid point %q: %w", args[1], err)
		}

		reg := dual.NewRegistry()
		z, err := reg.Apply(name, dual.New(x, 1))
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		fmt.Fprintf(out, "%s(%v) = ", name, x)
		if err := dual.Render(out, z, compact); err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s'(%v) = %v\n", name, x, z.Epsilon())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
