package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DefaultKind        string `mapstructure:"default_kind" yaml:"default_kind"`
	OutputFormat       string `mapstructure:"output_format" yaml:"output_format"`
	PanelHeight        int    `mapstructure:"panel_height" yaml:"panel_height"`
	PreviewRows        int    `mapstructure:"preview_rows" yaml:"preview_rows"`
	OutDir             string `mapstructure:"out_dir" yaml:"out_dir"`
	MaxRows            int    `mapstructure:"max_rows" yaml:"max_rows"`
	Delimiter          string `mapstructure:"delimiter" yaml:"delimiter"`
	DecimalSeparator   string `mapstructure:"decimal_separator" yaml:"decimal_separator"`
	ThousandsSeparator string `mapstructure:"thousands_separator" yaml:"thousands_separator"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.csvplot/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	return load(cfgFile, true)
}

// LoadStored loads only what is saved on disk, over the defaults. CSVPLOT_*
// environment values are not applied, so the result is safe to edit and Save.
func LoadStored(cfgFile string) (*Global, error) {
	return load(cfgFile, false)
}

func load(cfgFile string, env bool) (*Global, error) {
	v := viper.New()
	if env {
		v.SetEnvPrefix("CSVPLOT")
		v.AutomaticEnv()
	}

	v.SetDefault("default_kind", "Line")
	v.SetDefault("output_format", "json")
	v.SetDefault("panel_height", 300)
	v.SetDefault("preview_rows", 5)
	v.SetDefault("out_dir", "")
	v.SetDefault("max_rows", 0)
	v.SetDefault("delimiter", "")
	v.SetDefault("decimal_separator", "")
	v.SetDefault("thousands_separator", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".csvplot"), nil
}
