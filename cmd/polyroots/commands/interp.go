package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"polyroots/internal/interp"
)

func interpCmd() *cobra.Command {
	var (
		points  []string
		at      float64
		taylor  bool
		taylorX float64
	)

	cmd := &cobra.Command{
		Use:   "interp",
		Short: "Interpolate through points with divided differences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(points) == 0 {
				return fmt.Errorf("at least one --point required")
			}

			xs := make([]float64, 0, len(points))
			ys := make([]float64, 0, len(points))
			dys := make([]float64, 0, len(points))
			hermite := false
			for _, s := range points {
				parts := strings.Split(s, ",")
				if len(parts) != 2 && len(parts) != 3 {
					return fmt.Errorf("bad point %q: want x,y or x,y,dy", s)
				}
				vals := make([]float64, len(parts))
				for i, p := range parts {
					v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
					if err != nil {
						return fmt.Errorf("bad point %q: %w", s, err)
					}
					vals[i] = v
				}
				xs = append(xs, vals[0])
				ys = append(ys, vals[1])
				if len(vals) == 3 {
					hermite = true
					dys = append(dys, vals[2])
				} else {
					dys = append(dys, 0)
				}
			}

			var (
				dd  *interp.DividedDifference
				err error
			)
			if hermite {
				dd, err = interp.NewHermite(xs, ys, dys)
			} else {
				dd, err = interp.New(xs, ys)
			}
			if err != nil {
				return err
			}

			if taylor {
				p := dd.Taylor(taylorX)
				if jsonOut {
					return printJSON(map[string]any{"about": taylorX, "coefficients": p.Coef})
				}
				fmt.Printf("expansion about %g: %v\n", taylorX, p.Coef)
				return nil
			}

			y := dd.Eval(at)
			if jsonOut {
				return printJSON(map[string]any{"value": y})
			}
			fmt.Printf("p(%g) = %g\n", at, y)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&points, "point", "p", nil, "sample point x,y (or x,y,dy for Hermite); repeatable")
	cmd.Flags().Float64VarP(&at, "at", "x", 0, "evaluation point")
	cmd.Flags().BoolVar(&taylor, "taylor", false, "print Taylor coefficients instead of evaluating")
	cmd.Flags().Float64Var(&taylorX, "about", 0, "expansion point for --taylor")
	return cmd
}
