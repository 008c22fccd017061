package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/lattice"
)

func reduceCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "reduce <cell.yaml>",
		Short: "Reduce or standardize a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCell(args[0])
			if err != nil {
				return err
			}

			var red *cell.Cell
			switch method {
			case "niggli":
				red, err = lattice.NiggliReduce(c, symprec)
			case "delaunay":
				red, err = lattice.DelaunayReduce(c, symprec)
			case "primitive":
				red, err = lattice.FindPrimitive(c, symprec)
			case "refine":
				red, err = lattice.RefineCell(c, symprec)
			default:
				return fmt.Errorf("latsym: unknown reduce method %q", method)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "lattice:")
			lat := red.Lattice()
			for i := 0; i < 3; i++ {
				fmt.Fprintf(out, "  - [%.6f, %.6f, %.6f]\n", lat[i][0], lat[i][1], lat[i][2])
			}
			fmt.Fprintln(out, "positions:")
			for _, p := range red.Positions() {
				fmt.Fprintf(out, "  - [%.6f, %.6f, %.6f]\n", p[0], p[1], p[2])
			}
			fmt.Fprint(out, "species: [")
			for i, t := range red.Types() {
				if i > 0 {
					fmt.Fprint(out, ", ")
				}
				fmt.Fprint(out, t)
			}
			fmt.Fprintln(out, "]")

			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "niggli", "niggli | delaunay | primitive | refine")

	return cmd
}
