// Package outlineview provides an in-memory tree view that consumes outline
// updates.
//
// A Model holds the full item tree, the rows currently visible given the
// expansion state, and a cursor. It implements outline.View, so an update
// produced by outline.Diff can be replayed against it with outline.Apply:
//
//	m := outlineview.New[string]()
//	m.Load(old)
//	outline.Transition[string](m, old, next)
//	rows := m.Rows()
//
// The cursor stays on the selected item across an update batch when that
// item is still visible, and is clamped to the row range otherwise.
package outlineview
