package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-mtkscatter/partition"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify NAME...",
		Short: "Show how partitions are classified",
		Long: `Prints the name-derived scatter attributes of each partition.

Example:
  mtkscatter classify boot_a boot_b userdata nvram`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFILE\tTYPE\tOPERATION\tDOWNLOAD\tUPGRADABLE\tEMPTY_BOOT\tRESERVED")
			for _, name := range args {
				a := partition.Classify(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%t\t%t\t%t\n",
					a.Name, a.FileName, a.Type, a.OperationType,
					a.IsDownload, a.IsUpgradable, a.EmptyBootNeeded, a.IsReserved)
			}
			return w.Flush()
		},
	}
}
