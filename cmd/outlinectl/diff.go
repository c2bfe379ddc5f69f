package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/outlinekit/internal/logger"
	"github.com/joshuapare/outlinekit/pkg/outline"
	"github.com/joshuapare/outlinekit/pkg/snapfile"
)

var (
	diffExpansion bool
	diffStats     bool
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().BoolVar(&diffExpansion, "expansion", false, "Include items to expand and collapse")
	cmd.Flags().BoolVar(&diffStats, "stats", false, "Print a summary line")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Print the edit script between two snapshots",
		Long: `The diff command prints the insert, remove and move instructions that
turn the old snapshot into the new one. Indices are relative to the tree as
left by the preceding instructions.

Example:
  outlinectl diff before.yaml after.yaml
  outlinectl diff before.txt after.txt --expansion --stats
  outlinectl diff before.json after.json --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	old, next, err := loadPair(args[0], args[1])
	if err != nil {
		return err
	}

	u := outline.Diff(old, next, outline.DefaultDiffOptions())
	if !diffExpansion {
		u.Expand, u.Collapse = nil, nil
	}
	logger.Info("diff computed", "old", args[0], "new", args[1], "instructions", len(u.Script))

	if jsonOut() {
		data, err := snapfile.MarshalUpdate(u)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if u.IsEmpty() {
		printInfo("%s\n", paint(mutedStyle, "no changes"))
		return nil
	}
	fmt.Print(renderScript(u.Script))
	if diffExpansion {
		printExpansion(u.Expand, u.Collapse)
	}
	if diffStats {
		printInfo("%s\n", renderStats(u.Stats()))
	}
	return nil
}

func printExpansion(expand, collapse []string) {
	if len(expand) > 0 {
		fmt.Printf("%s %s\n", paint(insertStyle, "expand"), strings.Join(expand, ", "))
	}
	if len(collapse) > 0 {
		fmt.Printf("%s %s\n", paint(removeStyle, "collapse"), strings.Join(collapse, ", "))
	}
}
