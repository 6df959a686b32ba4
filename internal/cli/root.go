package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the unitconv command line
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "unitconv",
		Short:        "Convert distance, temperature and weight values",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a config file (default: ./config.yaml, ./config/config.yaml, $HOME/.unitconv/config.yaml)")

	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newUnitsCmd())
	return cmd
}
