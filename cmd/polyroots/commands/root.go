package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"polyroots/internal/app"
)

var (
	home    string
	jsonOut bool
	verbose bool
	appWire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "polyroots",
		Short: "Polynomial evaluation, root finding and interpolation CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".polyroots")
			}
			w, err := app.NewWire(app.Config{Home: home, Verbose: verbose})
			if err != nil {
				return err
			}
			appWire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "workspace dir (default ~/.polyroots)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		evalCmd(), solveCmd(), interpCmd(),
		saveCmd(), listCmd(), showCmd(), rmCmd(),
		batchCmd(), historyCmd(),
	)
	return root.Execute()
}
