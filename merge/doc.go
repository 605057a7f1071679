// Package merge combines a base script tree with prioritized mod
// overlay trees.
//
// Alignment is path-indexed, not line-based: entries correspond when
// they share a key path and an ordinal occurrence among same-keyed
// siblings. Additions union in, agreeing edits pass silently, and real
// disagreements become Conflict records resolved by a pluggable
// strategy. Merging never fails on well-formed trees; the only error
// is the recursion depth limit.
package merge
