package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var previewRows int

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Show the first rows of a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd, args[0])
		if err != nil {
			return err
		}
		n := settings().PreviewRows
		if cmd.Flags().Changed("rows") {
			n = previewRows
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d rows x %d columns\n", ds.Name, ds.Rows(), len(ds.Names()))
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(ds.Names(), "\t"))
		for _, row := range ds.Head(n) {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVarP(&previewRows, "rows", "n", 5, "number of rows to show (overrides config)")
}
