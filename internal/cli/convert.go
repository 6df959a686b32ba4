package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"unitconv/internal/config"
	"unitconv/internal/conversion"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "convert <type> <value> <from> <to>",
		Short: "Convert a value between two units",
		Example: `  unitconv convert distance 5 km mi
  unitconv convert temperature -- -40 C F
  unitconv convert weight 100 g oz --precision 3`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePrecision(cmd, root, precision)
			if err != nil {
				return err
			}

			svc, err := conversion.NewConversionService(p)
			if err != nil {
				return err
			}

			result, err := svc.Convert(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'f', p, 64))
			return err
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", 0, "decimal places to round to (overrides app.precision from config)")
	return cmd
}

// resolvePrecision prefers an explicit --precision flag over the configured value
func resolvePrecision(cmd *cobra.Command, root *rootOptions, flagValue int) (int, error) {
	if cmd.Flags().Changed("precision") {
		return flagValue, nil
	}

	cfg, err := config.Load(config.Options{ConfigFile: root.configFile})
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.NewLogger(cmd.ErrOrStderr())
	logger.Debug("loaded precision from config", "precision", cfg.App.Precision)

	return cfg.App.Precision, nil
}
