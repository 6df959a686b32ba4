package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"unitconv/internal/units"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List supported conversion types and their unit codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range units.Supported() {
				codes := lo.Map(d.Units, func(u units.Unit, _ int) string { return string(u) })
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Type, strings.Join(codes, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
