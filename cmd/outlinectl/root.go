package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/outlinekit/internal/logger"
)

var (
	// Global flags
	cfgFile       string
	verbose       bool
	quiet         bool
	noColor       bool
	inputFormat   string
	inputEncoding string
)

var rootCmd = &cobra.Command{
	Use:   "outlinectl",
	Short: "Diff and replay hierarchical outline snapshots",
	Long: `outlinectl compares outline snapshots (YAML, TOML, JSON or outline text)
and prints the minimal edit script that turns one into the other. Scripts can be
replayed against an in-memory tree view to check the result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd); err != nil {
			return err
		}
		return initLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/outlinectl/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.String("format", "text", "Output format (text, json)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-dir", "", `Write logs to this directory ("-" for stderr)`)
	flags.StringVar(&inputFormat, "input-format", "", "Snapshot format of input files (default: from extension)")
	flags.StringVar(&inputEncoding, "encoding", "", "Character encoding of outline text input (UTF-8, UTF-16LE, WINDOWS-1252)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func initLogging() error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{
		Enabled: cfg.Log.Dir != "",
		LogDir:  cfg.Log.Dir,
		Level:   level,
	})
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// jsonOut reports whether JSON output was requested
func jsonOut() bool {
	return cfg.Format == "json"
}
