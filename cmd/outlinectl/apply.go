package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/joshuapare/outlinekit/pkg/outline"
	"github.com/joshuapare/outlinekit/pkg/outlineview"
	"github.com/joshuapare/outlinekit/pkg/snapfile"
)

var applyScript string

func init() {
	cmd := newApplyCmd()
	cmd.Flags().StringVar(&applyScript, "script", "", "Replay this JSON script instead of diffing")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <old> <new>",
		Short: "Replay the update onto a tree view and verify the result",
		Long: `The apply command loads the old snapshot into an in-memory tree view,
replays the update from old to new against it in a single batch, and checks
that the view now matches the new snapshot. The resulting visible rows are
printed.

Example:
  outlinectl apply before.yaml after.yaml
  outlinectl apply before.yaml after.yaml --script update.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
}

func runApply(args []string) error {
	old, next, err := loadPair(args[0], args[1])
	if err != nil {
		return err
	}

	u, err := applyUpdate(old, next)
	if err != nil {
		return err
	}

	view := outlineview.New[string]()
	view.Load(old)
	if err := replay(view, u); err != nil {
		return errors.Wrap(err, "failed to apply update")
	}
	if !view.Snapshot().Equal(next) {
		return errors.Newf("view does not match %s after replaying %d instructions", args[1], len(u.Script))
	}

	if jsonOut() {
		items := make([]string, 0, len(view.Rows()))
		for _, row := range view.Rows() {
			items = append(items, row.Item)
		}
		return printJSON(struct {
			Instructions int      `json:"instructions"`
			Rows         []string `json:"rows"`
		}{len(u.Script), items})
	}

	fmt.Print(renderRows(view.Rows()))
	printInfo("%s\n", paint(mutedStyle, fmt.Sprintf("applied %d instructions, view matches %s", len(u.Script), args[1])))
	return nil
}

// applyUpdate returns the update to replay: the --script file when given,
// otherwise the diff between old and next.
func applyUpdate(old, next *outline.Snapshot[string]) (outline.Update[string], error) {
	if applyScript == "" {
		return outline.Diff(old, next, outline.DefaultDiffOptions()), nil
	}
	data, err := os.ReadFile(applyScript)
	if err != nil {
		return outline.Update[string]{}, errors.Wrap(err, "failed to read script")
	}
	u, err := snapfile.UnmarshalUpdate(data)
	if err != nil {
		return outline.Update[string]{}, err
	}
	// Reject scripts that do not fit old before touching the view.
	if err := outline.Catch(func() { outline.Replay(old, u.Script) }); err != nil {
		return outline.Update[string]{}, errors.Wrapf(err, "script %s does not apply", applyScript)
	}
	return u, nil
}

// replay applies u to view. An update the view rejects is returned as an
// error; the view is left as far as it got.
func replay(view *outlineview.Model[string], u outline.Update[string]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.IsAssertionFailure(e) {
				panic(r)
			}
			err = e
		}
	}()
	outline.Apply[string](view, u)
	return nil
}
