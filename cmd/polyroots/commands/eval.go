package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func evalCmd() *cobra.Command {
	var (
		coefs   string
		at      float64
		atC     string
		nDerivs int
	)

	cmd := &cobra.Command{
		Use:   "eval [saved-name]",
		Short: "Evaluate a polynomial at a point",
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

			if atC != "" {
				z, err := parseComplexPoint(atC)
				if err != nil {
					return err
				}
				y := p.EvalComplex(z)
				if jsonOut {
					return printJSON(map[string]any{"re": real(y), "im": imag(y)})
				}
				fmt.Printf("P(%s) = %s\n", formatComplex(z), formatComplex(y))
				return nil
			}

			if nDerivs > 0 {
				derivs := p.EvalDerivs(at, nDerivs)
				if jsonOut {
					return printJSON(map[string]any{"derivatives": derivs})
				}
				for i, d := range derivs {
					fmt.Printf("d%d/dx%d = %g\n", i, i, d)
				}
				return nil
			}

			y := p.Eval(at)
			if jsonOut {
				return printJSON(map[string]any{"value": y})
			}
			fmt.Printf("P(%g) = %g\n", at, y)
			return nil
		},
	}

	cmd.Flags().StringVarP(&coefs, "coefs", "c", "", "ascending coefficients, e.g. 1,0.5,0.3")
	cmd.Flags().Float64VarP(&at, "at", "x", 0, "evaluation point")
	cmd.Flags().StringVar(&atC, "complex", "", "complex evaluation point re,im")
	cmd.Flags().IntVarP(&nDerivs, "derivs", "d", 0, "also evaluate the first n derivatives")
	return cmd
}
