// Package inspect reports on problematic characters in a document without
// modifying it.
//
// Line examines one line and lists every character with its codepoint,
// flagging anything outside printable ASCII (32–127). Analyze summarises the
// whole document: non-ASCII histogram, first occurrences and suspicious lines.
// Scan lists codepoints known to break script parsing.
//
// Positions are zero-based character (rune) offsets; line numbers are
// one-based. Lines are split on "\n" only, so a trailing "\r" stays part of
// its line and is reported.
package inspect
