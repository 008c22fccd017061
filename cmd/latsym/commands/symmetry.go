package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latsym/symmetry"
)

func symmetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symmetry <cell.yaml>",
		Short: "Print the symmetry operations of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCell(args[0])
			if err != nil {
				return err
			}
			opts := symmetry.DefaultOptions()
			opts.Symprec = symprec
			ops, err := symmetry.Find(c, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d operations\n", len(ops))
			for i, op := range ops {
				fmt.Fprintf(out, "--- %d\n", i+1)
				for r := 0; r < 3; r++ {
					fmt.Fprintf(out, "  %2d %2d %2d\n",
						op.Rotation[r][0], op.Rotation[r][1], op.Rotation[r][2])
				}
				fmt.Fprintf(out, "  t = %.6f %.6f %.6f\n",
					op.Translation[0], op.Translation[1], op.Translation[2])
			}

			return nil
		},
	}
}
