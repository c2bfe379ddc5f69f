// Package orderedset provides a generic insertion-ordered set.
//
// Set keeps a slice for order and a map from item to position, so Contains
// and Index are O(1) and Append is amortized O(1). Bulk removal rebuilds the
// position map in a single pass and preserves the relative order of the
// surviving items.
//
// The outline package uses Set for the flattened, depth-first order of a
// snapshot, where duplicate checks and index lookups sit on the hot path of
// every mutation.
package orderedset
