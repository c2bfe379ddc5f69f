package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config is the merged result of defaults, config file, environment
// (OUTLINECTL_*) and flags.
type config struct {
	Format        string    `mapstructure:"format"`
	Color         bool      `mapstructure:"color"`
	DurableWrites bool      `mapstructure:"durable_writes"`
	Log           logConfig `mapstructure:"log"`
}

type logConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

var cfg = defaultConfig()

func defaultConfig() config {
	return config{
		Format:        "text",
		Color:         true,
		DurableWrites: true,
		Log:           logConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("format", d.Format)
	v.SetDefault("color", d.Color)
	v.SetDefault("durable_writes", d.DurableWrites)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.dir", d.Log.Dir)
}

// defaultConfigDir returns $HOME/.config/outlinectl, or "" without a home.
func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "outlinectl")
}

// initConfig loads the configuration into cfg. A missing default config file
// is fine; a missing --config file is an error.
func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("OUTLINECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir := defaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read config")
		}
	}

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"format":    "format",
		"log.level": "log-level",
		"log.dir":   "log-dir",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind flag %s", flag)
			}
		}
	}

	next := defaultConfig()
	if err := v.Unmarshal(&next); err != nil {
		return errors.Wrap(err, "failed to unmarshal config")
	}
	if noColor {
		next.Color = false
	}
	switch next.Format {
	case "text", "json":
	default:
		return errors.Newf("unsupported output format %q (want text or json)", next.Format)
	}

	cfg = next
	printVerbose("Using config %s\n", v.ConfigFileUsed())
	return nil
}
