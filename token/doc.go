// Package token tokenizes Paradox-style script text.
//
// The token stream is flat: braces, operators, and scalar literals.
// Comments (# to end of line) and whitespace are consumed as token
// separators and never surfaced; comment preservation is a concern of
// layers above the parser.
package token
