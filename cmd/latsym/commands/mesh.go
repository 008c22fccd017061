package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latsym/mesh"
)

func meshCmd() *cobra.Command {
	var (
		dims           []int
		shift          []int
		noTimeReversal bool
	)

	cmd := &cobra.Command{
		Use:   "mesh <cell.yaml>",
		Short: "Reduce a regular reciprocal mesh to its irreducible points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCell(args[0])
			if err != nil {
				return err
			}
			if len(dims) != 3 {
				return mesh.ErrBadMesh
			}
			if len(shift) != 3 {
				return mesh.ErrBadShift
			}

			opts := mesh.DefaultOptions()
			copy(opts.Mesh[:], dims)
			copy(opts.Shift[:], shift)
			opts.TimeReversal = !noTimeReversal
			opts.Symprec = symprec

			res, err := mesh.Irreducible(c, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d irreducible points of %d\n", res.NumIrreducible, len(res.Mapping))
			weights := res.Weights()
			for i, a := range res.GridAddress {
				if res.Mapping[i] != i {
					continue
				}
				fmt.Fprintf(out, "  %3d %3d %3d  weight %d\n", a[0], a[1], a[2], weights[i])
			}

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&dims, "mesh", nil, "grid divisions n1,n2,n3 (required)")
	cmd.Flags().IntSliceVar(&shift, "shift", []int{0, 0, 0}, "half-step shift per axis, each 0 or 1")
	cmd.Flags().BoolVar(&noTimeReversal, "no-time-reversal", false, "do not fold q onto -q")
	_ = cmd.MarkFlagRequired("mesh")

	return cmd
}
