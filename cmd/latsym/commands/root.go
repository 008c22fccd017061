package commands

import (
	"github.com/spf13/cobra"
)

var symprec float64

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:           "latsym",
		Short:         "Crystal symmetry toolkit: space groups, standardization, mesh reduction",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().Float64Var(&symprec, "symprec", 1e-5, "symmetry search tolerance (lattice units)")

	root.AddCommand(datasetCmd(), symmetryCmd(), meshCmd(), reduceCmd())

	return root.Execute()
}
