package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartleap/internal/digest"
)

func fingerprintCmd() *cobra.Command {
	var exprs []string
	cmd := &cobra.Command{
		Use:   "fingerprint [EQUATION...]",
		Short: "Print a digest of each plotted trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runBatch(cmd, append(args, exprs...))
			if err != nil {
				return err
			}
			for _, t := range res.Traces {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", digest.Fingerprint(t), t.Meta().Name)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&exprs, "expr", "e", nil, "equation to fingerprint (repeatable)")
	return cmd
}
