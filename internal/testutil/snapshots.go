// Package testutil provides snapshot fixtures shared by the package tests.
package testutil

import (
	"fmt"
	"math/rand/v2"

	"github.com/joshuapare/outlinekit/pkg/outline"
)

// Pool returns n distinct item names built from format, e.g. Pool("n%02d", 40).
func Pool(format string, n int) []string {
	pool := make([]string, n)
	for i := range pool {
		pool[i] = fmt.Sprintf(format, i)
	}
	return pool
}

// RandomOptions controls RandomSnapshot. All values are percentages.
type RandomOptions struct {
	Skip   int // items of the pool left out
	Root   int // placed items attached at the root level
	Expand int // items marked expanded
	Group  int // root items marked as groups
}

// DefaultRandomOptions returns a mix that produces trees a few levels deep.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{Skip: 30, Root: 25, Expand: 33}
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSnapshot builds a snapshot from a random subset of pool, attaching
// each item at a random position under a random already placed item.
func RandomSnapshot(r *rand.Rand, pool []string, opts RandomOptions) *outline.Snapshot[string] {
	s := outline.New[string]()
	var placed []string
	for _, i := range r.Perm(len(pool)) {
		if r.IntN(100) < opts.Skip {
			continue
		}
		item := pool[i]
		if len(placed) == 0 || r.IntN(100) < opts.Root {
			s.Insert(r.IntN(len(s.RootItems())+1), item)
			if r.IntN(100) < opts.Group {
				s.MarkGroups(item)
			}
		} else {
			parent := placed[r.IntN(len(placed))]
			s.InsertChildren(parent, r.IntN(len(s.Children(parent))+1), item)
		}
		if r.IntN(100) < opts.Expand {
			s.Expand(item)
		}
		placed = append(placed, item)
	}
	return s
}
