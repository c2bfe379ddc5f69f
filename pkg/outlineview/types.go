package outlineview

import "github.com/joshuapare/outlinekit/pkg/outline"

// Row is one visible line of the outline.
type Row[T comparable] struct {
	Item        T
	Parent      outline.Ref[T]
	Depth       int
	HasChildren bool
	ChildCount  int // Number of direct children (for display)
	Expanded    bool
	Group       bool
}
