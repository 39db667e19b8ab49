package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"polyroots/internal/poly"
)

func saveCmd() *cobra.Command {
	var coefs string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Store a named polynomial in the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCoefs(coefs)
			if err != nil {
				return err
			}
			if _, err := poly.Build(c); err != nil {
				return err
			}
			if err := appWire.Polys.SavePolynomial(args[0], c); err != nil {
				return err
			}
			fmt.Printf("saved %q\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&coefs, "coefs", "c", "", "ascending coefficients, e.g. 1,0.5,0.3")
	_ = cmd.MarkFlagRequired("coefs")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored polynomials",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := appWire.Polys.ListPolynomials()
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(m)
			}
			names := make([]string, 0, len(m))
			for n := range m {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				fmt.Printf("%s: %s\n", n, poly.New(m[n]).String())
			}
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print one stored polynomial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok, err := appWire.Polys.LoadPolynomial(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no polynomial named %q", args[0])
			}
			if jsonOut {
				return printJSON(map[string]any{"name": args[0], "coefficients": c})
			}
			fmt.Println(poly.New(c).String())
			return nil
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a stored polynomial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appWire.Polys.DeletePolynomial(args[0])
		},
	}
}
