package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-mtkscatter/config"
)

func newProfileCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "profile PATH",
		Short: "Write the default platform profile",
		Long: `Writes the MT6765 reference profile as YAML so it can be edited and passed
back with --config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
