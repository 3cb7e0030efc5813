package cmd

import (
	"fmt"
	"os"
	"strings"

	cfgpkg "github.com/KaramelBytes/csvplot-cli/internal/config"
	"github.com/KaramelBytes/csvplot-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Dataset reading flags (override config if set)
	flagDelimiter  string
	flagDecimal    string
	flagThousands  string
	flagMaxRows    int
	flagSheetName  string
	flagSheetIndex int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "csvplot",
	Short: "csvplot: turn a CSV/XLSX dataset into a chart specification",
	Long: `csvplot reads a tabular dataset, lets you pick a plot type and axis columns, and emits a
renderer-agnostic chart specification (or a Plotly figure) describing what to draw.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.csvplot/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	rootCmd.PersistentFlags().StringVar(&flagDecimal, "decimal", "", "decimal separator for numbers: '.'|'comma' (auto-detect if omitted)")
	rootCmd.PersistentFlags().StringVar(&flagThousands, "thousands", "", "thousands separator for numbers: ','|'.'|'space' (auto-detect if omitted)")
	rootCmd.PersistentFlags().IntVar(&flagMaxRows, "max-rows", 0, "maximum rows to load (0 = unlimited, overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSheetName, "sheet-name", "", "XLSX: sheet name to load")
	rootCmd.PersistentFlags().IntVar(&flagSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("delimiter") {
		cfg.Delimiter = flagDelimiter
	}
	if f.Changed("decimal") {
		cfg.DecimalSeparator = flagDecimal
	}
	if f.Changed("thousands") {
		cfg.ThousandsSeparator = flagThousands
	}
	if f.Changed("max-rows") && flagMaxRows >= 0 {
		cfg.MaxRows = flagMaxRows
	}
}

// settings returns the loaded configuration, or defaults when none loaded.
func settings() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		DefaultKind:        "Line",
		OutputFormat:       "json",
		PanelHeight:        300,
		PreviewRows:        5,
		MaxRows:            flagMaxRows,
		Delimiter:          flagDelimiter,
		DecimalSeparator:   flagDecimal,
		ThousandsSeparator: flagThousands,
	}
}

func debugf(cmd *cobra.Command, format string, args ...any) {
	if !debug {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "[debug] "+format+"\n", args...)
}

// datasetOptions translates configuration into loader options.
func datasetOptions(c *cfgpkg.Global) (dataset.Options, error) {
	opt := dataset.DefaultOptions()
	opt.MaxRows = c.MaxRows
	opt.SheetName = flagSheetName
	opt.SheetIndex = flagSheetIndex
	switch c.Delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case "\t", "tab":
		opt.Delimiter = '\t'
	case ";":
		opt.Delimiter = ';'
	default:
		return opt, fmt.Errorf("unsupported delimiter: %s", c.Delimiter)
	}
	switch strings.ToLower(strings.TrimSpace(c.DecimalSeparator)) {
	case ",", "comma":
		opt.DecimalSeparator = ','
	case ".", "dot":
		opt.DecimalSeparator = '.'
	case "":
	default:
		return opt, fmt.Errorf("unsupported decimal separator: %s (use '.'|'comma')", c.DecimalSeparator)
	}
	switch strings.ToLower(c.ThousandsSeparator) {
	case ",":
		opt.ThousandsSeparator = ','
	case ".":
		opt.ThousandsSeparator = '.'
	case "space", " ":
		opt.ThousandsSeparator = ' '
	case "":
	default:
		return opt, fmt.Errorf("unsupported thousands separator: %s (use ','|'.'|'space')", c.ThousandsSeparator)
	}
	return opt, nil
}

// loadDataset reads path with the effective options and reports loader warnings.
func loadDataset(cmd *cobra.Command, path string) (*dataset.Dataset, error) {
	opt, err := datasetOptions(settings())
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(path, opt)
	if err != nil {
		return nil, err
	}
	debugf(cmd, "loaded %s: %d rows, %d columns", ds.Name, ds.Rows(), len(ds.Names()))
	for _, w := range ds.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s\n", w)
	}
	return ds, nil
}
