// Package report renders merge conflict reports for humans and
// machines: colored text with inline diffs, JSON for tooling, and
// expression-based filtering over the conflict set.
package report
