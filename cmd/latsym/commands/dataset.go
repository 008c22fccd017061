package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latsym/spacegroup"
	"github.com/katalvlaran/latsym/symmetry"
)

func datasetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dataset <cell.yaml>",
		Short: "Classify a cell and print its space-group dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCell(args[0])
			if err != nil {
				return err
			}
			opts := symmetry.DefaultOptions()
			opts.Symprec = symprec
			ds, err := spacegroup.Classify(c, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "space group      %s (%d)\n", ds.International, ds.SpacegroupNumber)
			fmt.Fprintf(out, "hall symbol      %s (hall number %d)\n", ds.Hall, ds.HallNumber)
			if ds.Choice != "" {
				fmt.Fprintf(out, "setting choice   %s\n", ds.Choice)
			}
			fmt.Fprintf(out, "point group      %s\n", ds.PointGroup)
			fmt.Fprintf(out, "operations       %d\n", ds.NOperations)
			fmt.Fprintf(out, "origin shift     %.6f %.6f %.6f\n",
				ds.OriginShift[0], ds.OriginShift[1], ds.OriginShift[2])
			fmt.Fprintln(out, "transformation")
			for i := 0; i < 3; i++ {
				fmt.Fprintf(out, "  %9.6f %9.6f %9.6f\n",
					ds.Transformation[i][0], ds.Transformation[i][1], ds.Transformation[i][2])
			}
			fmt.Fprintln(out, "std lattice")
			for i := 0; i < 3; i++ {
				fmt.Fprintf(out, "  %12.6f %12.6f %12.6f\n",
					ds.StdLattice[i][0], ds.StdLattice[i][1], ds.StdLattice[i][2])
			}
			fmt.Fprintln(out, "atoms (type  wyckoff  site symmetry  equivalent to)")
			for i := 0; i < c.NumAtoms(); i++ {
				fmt.Fprintf(out, "  %3d  %4d  %c  %-8s %3d\n",
					i, c.Type(i), ds.WyckoffLetters[i], ds.SiteSymmetrySymbols[i], ds.EquivalentAtoms[i])
			}

			return nil
		},
	}
}
