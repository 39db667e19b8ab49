package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"polyroots/internal/solve"
)

func solveCmd() *cobra.Command {
	var (
		coefs      string
		complexOut bool
	)

	cmd := &cobra.Command{
		Use:   "solve [saved-name]",
		Short: "Find roots of a polynomial up to degree three",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			p, err := resolvePoly(coefs, name)
			if err != nil {
				return err
			}

			if complexOut {
				roots, err := solve.Complex(p)
				if err != nil {
					return err
				}
				if jsonOut {
					out := make([]map[string]float64, len(roots))
					for i, z := range roots {
						out[i] = map[string]float64{"re": real(z), "im": imag(z)}
					}
					return printJSON(map[string]any{"roots": out})
				}
				for _, z := range roots {
					fmt.Println(formatComplex(z))
				}
				return nil
			}

			roots, err := solve.Real(p)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]any{"roots": roots})
			}
			for _, r := range roots {
				fmt.Printf("%g\n", r)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&coefs, "coefs", "c", "", "ascending coefficients, e.g. -27,0,0,1")
	cmd.Flags().BoolVar(&complexOut, "complex", false, "return complex roots")
	return cmd
}
