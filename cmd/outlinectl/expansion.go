package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/outlinekit/pkg/outline"
)

func init() {
	rootCmd.AddCommand(newExpansionCmd())
}

func newExpansionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expansion <old> <new>",
		Short: "Print which items change expansion state",
		Long: `The expansion command prints the items a view must expand and collapse
to go from the old snapshot's display state to the new one.

Example:
  outlinectl expansion before.yaml after.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpansion(args)
		},
	}
}

func runExpansion(args []string) error {
	old, next, err := loadPair(args[0], args[1])
	if err != nil {
		return err
	}
	expand, collapse := outline.ExpansionDelta(old, next)

	if jsonOut() {
		return printJSON(struct {
			Expand   []string `json:"expand"`
			Collapse []string `json:"collapse"`
		}{nonNil(expand), nonNil(collapse)})
	}
	if len(expand) == 0 && len(collapse) == 0 {
		printInfo("%s\n", paint(mutedStyle, "no changes"))
		return nil
	}
	printExpansion(expand, collapse)
	return nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
