package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent run records",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := appWire.Runs.Runs(limit)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(runs)
			}
			for _, rec := range runs {
				ok := 0
				for _, r := range rec.Results {
					if r.Err == "" {
						ok++
					}
				}
				fmt.Printf("%s  %s  %d/%d ok\n",
					rec.At.Format(time.RFC3339), rec.Source, ok, len(rec.Results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "max records to show")
	return cmd
}
