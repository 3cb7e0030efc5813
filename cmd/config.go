package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/csvplot-cli/internal/chart"
	cfgpkg "github.com/KaramelBytes/csvplot-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set csvplot configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "default_kind: %s\n", cfg.DefaultKind)
		fmt.Fprintf(out, "output_format: %s\n", cfg.OutputFormat)
		fmt.Fprintf(out, "panel_height: %d\n", cfg.PanelHeight)
		fmt.Fprintf(out, "preview_rows: %d\n", cfg.PreviewRows)
		if cfg.OutDir != "" {
			fmt.Fprintf(out, "out_dir: %s\n", cfg.OutDir)
		}
		fmt.Fprintf(out, "max_rows: %d\n", cfg.MaxRows)
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", cfg.Delimiter)
		}
		if cfg.DecimalSeparator != "" {
			fmt.Fprintf(out, "decimal_separator: %q\n", cfg.DecimalSeparator)
		}
		if cfg.ThousandsSeparator != "" {
			fmt.Fprintf(out, "thousands_separator: %q\n", cfg.ThousandsSeparator)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		// start from the saved file so flag and env overrides are not persisted
		stored, err := cfgpkg.LoadStored(cfgFile)
		if err != nil {
			return err
		}
		switch key {
		case "default_kind":
			k, err := chart.ParseKind(val)
			if err != nil {
				return fmt.Errorf("invalid default_kind: %w", err)
			}
			stored.DefaultKind = k.String()
		case "output_format":
			switch strings.ToLower(val) {
			case "json":
				stored.OutputFormat = "json"
			case "yaml", "yml":
				stored.OutputFormat = "yaml"
			default:
				return fmt.Errorf("invalid output_format: %s (use json or yaml)", val)
			}
		case "panel_height":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for panel_height: %v", val)
			}
			stored.PanelHeight = i
		case "preview_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for preview_rows: %v", val)
			}
			stored.PreviewRows = i
		case "max_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_rows: %v", val)
			}
			stored.MaxRows = i
		case "out_dir":
			stored.OutDir = val
		case "delimiter":
			stored.Delimiter = val
		case "decimal_separator":
			stored.DecimalSeparator = val
		case "thousands_separator":
			stored.ThousandsSeparator = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if _, err := datasetOptions(stored); err != nil {
			return err
		}
		if err := cfgpkg.Save(stored, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
