package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/joshuapare/outlinekit/pkg/snapfile"
)

var (
	fmtTo     string
	fmtOutput string
	fmtBOM    bool
	fmtEncAs  string
)

func init() {
	cmd := newFmtCmd()
	cmd.Flags().StringVar(&fmtTo, "to", "", "Target format (yaml, toml, json, text); default: from --output extension")
	cmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&fmtEncAs, "output-encoding", "", "Character encoding of outline text output")
	cmd.Flags().BoolVar(&fmtBOM, "bom", false, "Write a byte order mark (outline text only)")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Convert a snapshot between formats",
		Long: `The fmt command reads a snapshot and writes it in another format.
Files are replaced atomically; set durable_writes: false in the config to skip
flushing to disk.

Example:
  outlinectl fmt outline.txt --to yaml
  outlinectl fmt outline.yaml -o outline.toml
  outlinectl fmt outline.yaml -o outline.txt --output-encoding UTF-16LE --bom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
}

func runFmt(args []string) error {
	snap, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	opts := snapfile.Options{
		Encoding: fmtEncAs,
		WithBOM:  fmtBOM,
		Durable:  cfg.DurableWrites,
	}
	if fmtTo != "" {
		format, err := snapfile.ParseFormat(fmtTo)
		if err != nil {
			return err
		}
		opts.Format = format
	}

	if fmtOutput != "" {
		if err := snapfile.Save(fmtOutput, snap, opts); err != nil {
			return errors.Wrapf(err, "failed to write %s", fmtOutput)
		}
		printVerbose("Wrote %s\n", fmtOutput)
		return nil
	}

	if opts.Format == "" {
		return errors.New("--to is required when writing to stdout")
	}
	data, err := snapfile.Encode(snap, opts.Format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
