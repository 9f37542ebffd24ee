package commands

import (
	"os"

	"github.com/spf13/cobra"

	"chartleap/internal/app"
	"chartleap/internal/logging"
)

var (
	home      string
	serverURL string
	verbose   bool

	wire *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "chartleap",
		Short:        "Classify, sample and plot equations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			if err := os.MkdirAll(home, 0o755); err != nil {
				return err
			}
			if verbose {
				logging.SetLogger(logging.New(cmd.ErrOrStderr(), true))
			} else {
				logging.SetLogger(nil)
			}
			wire = nil
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "settings dir (default ~/.chartleap)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "plot server base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log classification and sampling details to stderr")

	root.AddCommand(plotCmd(), classifyCmd(), fingerprintCmd(), configCmd())
	return root
}

// appWire builds the dependency graph on first use so that config init can
// run against a broken settings file.
func appWire() (*app.Wire, error) {
	if wire != nil {
		return wire, nil
	}
	w, err := app.NewWire(app.Config{Home: home, ServerURL: serverURL})
	if err != nil {
		return nil, err
	}
	wire = w
	return w, nil
}
