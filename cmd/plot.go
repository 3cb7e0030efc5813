package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/csvplot-cli/internal/chart"
	"github.com/KaramelBytes/csvplot-cli/internal/render"
	"github.com/KaramelBytes/csvplot-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	plotKind      string
	plotX         string
	plotY         []string
	plotSecondary []string
	plotSubplots  bool
	plotFormat    string
	plotPlotly    bool
	plotOutput    string
	plotOutDir    string
)

var plotCmd = &cobra.Command{
	Use:   "plot <file>",
	Short: "Build a chart specification from a dataset",
	Long: `Build a chart specification from a dataset.

Line, Scatter, Bar and Area plot the --y columns against --x. Histogram and Box plot the
distribution of each --y column and ignore --x. With several --y columns, --subplots stacks
one panel per column; otherwise --secondary moves columns onto a right-hand Y axis
(Line, Scatter and Area only).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := settings()
		kindName := plotKind
		if !cmd.Flags().Changed("kind") && c.DefaultKind != "" {
			kindName = c.DefaultKind
		}
		kind, err := chart.ParseKind(kindName)
		if err != nil {
			return err
		}
		req, err := chart.NewRequest(kind, plotX, plotY, plotSecondary, plotSubplots)
		if err != nil {
			switch {
			case errors.Is(err, chart.ErrEmptySelection):
				fmt.Fprintln(cmd.ErrOrStderr(), "⚠ Warning: Please select at least one column to plot (--y).")
			case errors.Is(err, chart.ErrMissingAxis):
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s plots need an X-axis column (--x).\n", kind)
			}
			return err
		}
		if len(plotSecondary) > 0 && len(req.Secondary) == 0 {
			debugf(cmd, "secondary axis selection ignored for %s with %d column(s)", kind, len(req.Y))
		}
		if plotSubplots && !req.Subplots {
			debugf(cmd, "subplots ignored for %s with %d column(s)", kind, len(req.Y))
		}

		ds, err := loadDataset(cmd, args[0])
		if err != nil {
			return err
		}
		if !kind.Distribution() {
			for _, y := range req.Y {
				if _, ok := ds.Column(y); ok && !ds.IsNumeric(y) {
					debugf(cmd, "column %q is not numeric", y)
				}
			}
		}

		spec, err := chart.NewBuilder(chart.WithPanelHeight(c.PanelHeight)).Build(ds, req)
		if err != nil {
			return err
		}
		debugf(cmd, "built %d series across %d panel(s)", len(spec.Series), spec.Layout.PanelCount)

		format := plotFormat
		if !cmd.Flags().Changed("format") && c.OutputFormat != "" {
			format = c.OutputFormat
		}
		var doc any = spec
		if plotPlotly {
			doc = render.Plotly(spec)
		}
		data, err := utils.Encode(doc, format)
		if err != nil {
			return err
		}

		outDir := plotOutDir
		if outDir == "" && plotOutput == "" {
			outDir = c.OutDir
		}
		written := false
		if plotOutput != "" {
			if err := utils.SafeWriteFile(plotOutput, data); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote chart spec to %s\n", plotOutput)
			written = true
		}
		if outDir != "" {
			path := filepath.Join(outDir, outputName(args[0], data, format))
			if err := utils.SafeWriteFile(path, data); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote chart spec to %s\n", path)
			written = true
		}
		if !written {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}
		return nil
	},
}

// outputName derives "<dataset>-<content uuid>.<ext>" so identical specs share a file.
func outputName(src string, data []byte, format string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	ext := ".json"
	switch strings.ToLower(format) {
	case "yaml", "yml":
		ext = ".yaml"
	}
	return base + "-" + utils.ContentID(data) + ext
}

func kindNames() string {
	names := make([]string, 0, len(chart.Kinds()))
	for _, k := range chart.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, "|")
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotKind, "kind", "k", "Line", "plot type: "+kindNames())
	plotCmd.Flags().StringVarP(&plotX, "x", "x", "", "X-axis column (Line, Scatter, Bar, Area)")
	plotCmd.Flags().StringArrayVarP(&plotY, "y", "y", nil, "Y column to plot; repeat for more, in order (names may contain commas)")
	plotCmd.Flags().StringArrayVar(&plotSecondary, "secondary", nil, "Y column drawn on the secondary axis; repeat for more")
	plotCmd.Flags().BoolVar(&plotSubplots, "subplots", false, "stack one panel per Y column")
	plotCmd.Flags().StringVarP(&plotFormat, "format", "f", "json", "output encoding: json|yaml")
	plotCmd.Flags().BoolVar(&plotPlotly, "plotly", false, "emit a Plotly figure instead of the chart spec")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "write output to this path")
	plotCmd.Flags().StringVar(&plotOutDir, "out-dir", "", "write output into this directory under a content-derived name")
}
