// Package batch merges many files concurrently, one merge per
// relative path across a base game tree and a set of mods.
package batch
