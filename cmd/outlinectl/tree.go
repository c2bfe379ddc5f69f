package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/outlinekit/pkg/outlineview"
)

var (
	treeVisible bool
	treeDepth   int
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().BoolVar(&treeVisible, "visible", false, "Show only rows visible under the current expansion state")
	cmd.Flags().IntVar(&treeDepth, "depth", -1, "Maximum depth (-1 for unlimited)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Display a snapshot as a tree",
		Long: `The tree command renders a snapshot with disclosure markers: ▾ expanded,
▸ collapsed (with the child count), • leaf. Group items are highlighted.

Example:
  outlinectl tree outline.yaml
  outlinectl tree outline.txt --visible
  outlinectl tree outline.json --depth 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

func runTree(args []string) error {
	snap, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	var rows []outlineview.Row[string]
	if treeVisible {
		view := outlineview.New[string]()
		view.Load(snap)
		rows = view.Rows()
	} else {
		rows = snapshotRows(snap)
	}
	if treeDepth >= 0 {
		kept := rows[:0:0]
		for _, row := range rows {
			if row.Depth <= treeDepth {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	if jsonOut() {
		type jsonRow struct {
			Item     string `json:"item"`
			Depth    int    `json:"depth"`
			Expanded bool   `json:"expanded"`
			Group    bool   `json:"group,omitempty"`
			Children int    `json:"children"`
		}
		out := make([]jsonRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, jsonRow{row.Item, row.Depth, row.Expanded, row.Group, row.ChildCount})
		}
		return printJSON(out)
	}

	printInfo("%s\n", paint(headerStyle, fmt.Sprintf("%s (%d items)", args[0], snap.Len())))
	fmt.Print(renderRows(rows))
	return nil
}
