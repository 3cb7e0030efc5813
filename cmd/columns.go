package cmd

import (
	"fmt"

	"github.com/KaramelBytes/csvplot-cli/internal/chart"
	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "List the dataset's columns split into numeric and all",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd, args[0])
		if err != nil {
			return err
		}
		numeric, all := chart.Classify(ds)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Numeric columns (%d):\n", len(numeric))
		if len(numeric) == 0 {
			fmt.Fprintln(out, "  (none; every column is offered for Y selection)")
		}
		for _, n := range numeric {
			c, _ := ds.Column(n)
			if st, ok := c.Stats(); ok && st.Count > 0 {
				fmt.Fprintf(out, "  - %s (min %g, max %g, mean %.4g, missing %d)\n", n, st.Min, st.Max, st.Mean, st.Missing)
				continue
			}
			fmt.Fprintf(out, "  - %s\n", n)
		}
		fmt.Fprintf(out, "All columns (%d):\n", len(all))
		for _, n := range all {
			c, _ := ds.Column(n)
			fmt.Fprintf(out, "  - %s (%s)\n", n, c.Kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
