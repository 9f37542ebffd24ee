package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chartleap/internal/domain"
	"chartleap/internal/store"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage plot settings",
	}
	cmd.AddCommand(configInitCmd(), configShowCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss := store.NewSettingsFileStore(home)
			if _, err := os.Stat(ss.Path()); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", ss.Path())
			}
			if err := ss.SaveSettings(domain.DefaultSettings()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", ss.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := appWire()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(w.Settings)
		},
	}
}
