// Package ir is the intermediate representation of parsed script
// files.
//
// A script file is a tree of nodes. A Node is either a scalar literal
// (with a Kind tag and the verbatim source token, so re-serialization
// cannot change quoting or numeric form) or a block holding an
// ordered sequence of entries. An Entry pairs an optional key and
// operator with a value node.
//
// Blocks are ordered sequences, never key-unique maps: repeated keys
// are legal script and represent repeated directives, so the IR keeps
// every occurrence in source order and alignment between trees is by
// key plus ordinal occurrence, not key lookup.
//
// Trees are immutable by convention: parsing builds a tree once, and
// merging allocates a new tree, so a parsed base can be reused across
// merges against different overlay sets.
package ir
