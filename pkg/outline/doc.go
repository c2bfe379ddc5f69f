// Package outline provides hierarchical snapshots of uniquely identified
// items and the reconciliation engine that turns one snapshot into another
// as an ordered edit script.
//
// # Overview
//
// A Snapshot is an ordered forest: every item has an optional parent, an
// ordered list of children and an expansion flag. Items are any comparable
// Go value and must be unique across the whole tree.
//
//	snap := outline.Build(
//	    outline.Node("Mail",
//	        outline.Node("Inbox"),
//	        outline.Node("Sent"),
//	    ).Expand(),
//	    outline.Node("Notes"),
//	)
//	snap.AppendChildren("Mail", "Drafts")
//	snap.MoveBefore("Inbox", "Drafts")
//
// Snapshots have value semantics. Clone is O(1); the backing tree is copied
// on the first mutation of a shared snapshot.
//
// # Contract Violations
//
// Referencing an unknown item, inserting a duplicate, passing an index past
// the child count, or moving an item below itself are programmer errors.
// The offending call panics with a *ContractError before changing anything.
// Catch converts such a panic into an error:
//
//	err := outline.Catch(func() { snap.Append("Notes") })
//	errors.Is(err, outline.ErrDuplicateItem) // true
//
// # Reconciliation
//
// Reconcile computes the Insert, Remove and Move instructions that morph an
// old snapshot into a new one. Each level is diffed against its target with
// a Myers diff (znkr.io/diff); an insert of an item that exists elsewhere is
// promoted to a single Move, so reordering and reparenting never show up as
// remove plus insert. Indices in the script refer to the tree as left by the
// preceding instructions, the way a live view observes them:
//
//	script := outline.Reconcile(old, new)
//	for _, in := range script {
//	    fmt.Println(in)
//	}
//
// ExpansionDelta computes which items change between expanded and collapsed.
// Diff bundles both, and Apply replays them against a View in one batch.
package outline
