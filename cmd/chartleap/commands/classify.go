package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chartleap/internal/domain"
)

func classifyCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "classify EQUATION",
		Short: "Print the category and sub-expressions of an equation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eq := strings.TrimSpace(strings.Join(args, " "))
			w, err := appWire()
			if err != nil {
				return err
			}

			var sum domain.ClassificationSummary
			if w.Remote != nil {
				sum, err = w.Remote.Classify(eq)
			} else {
				var c domain.Classification
				c, err = w.Engine.Classifier.Classify(eq)
				sum = c.Summary()
			}
			if err != nil {
				return fmt.Errorf("could not classify %q: %w", eq, err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}
			fmt.Fprintf(out, "Category:    %s\n", sum.Category)
			fmt.Fprintf(out, "Expressions: %s\n", strings.Join(sum.Expressions, " ; "))
			if sum.Var != "" {
				fmt.Fprintf(out, "Variable:    %s\n", sum.Var)
			}
			if sum.Category == domain.Parametric {
				fmt.Fprintf(out, "Trig:        %t\n", sum.Trig)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the classification as JSON")
	return cmd
}
