package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"polyroots/internal/batch"
	"polyroots/internal/domain"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run a YAML problem file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			results, err := appWire.Runner.Run(args[0], problems)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(results)
			}
			for _, r := range results {
				fmt.Println(formatResult(r))
			}
			return nil
		},
	}
}

func formatResult(r domain.Result) string {
	prefix := fmt.Sprintf("%-20s %-14s", r.Name, r.Kind)
	switch {
	case r.Err != "":
		return prefix + "error: " + r.Err
	case r.Value != nil:
		return prefix + fmt.Sprintf("%g", *r.Value)
	case r.Derivatives != nil:
		return prefix + joinFloats(r.Derivatives)
	case r.Roots != nil:
		return prefix + joinFloats(r.Roots)
	case r.ComplexRoots != nil:
		parts := make([]string, len(r.ComplexRoots))
		for i, z := range r.ComplexRoots {
			parts[i] = formatComplex(complex(z.Re, z.Im))
		}
		return prefix + strings.Join(parts, ", ")
	default:
		return prefix + "(no result)"
	}
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ", ")
}
