// Package sanitizer rewrites document text with ordered, pattern-based rules.
//
// A Rule pairs a Pattern with a replacement string. An empty replacement
// deletes every match. Patterns cover the shapes problematic Unicode takes in
// served script files:
//
//   - Literal: a fixed run of text, matched leftmost-first without overlap.
//   - Codepoint, Range, Set: codepoint membership (zero-width space, BOM,
//     emoji blocks, …).
//   - Class: membership in a unicode.RangeTable such as unicode.So.
//   - Regexp: an RE2 expression, mostly for rule profiles.
//   - Translate: a per-codepoint substitution table (see AccentMap).
//   - FoldMarks: strips combining marks using golang.org/x/text normalisation.
//
// # Usage
//
//	import "github.com/dmitrymomot/unicleaner/pkg/sanitizer"
//
//	rules := sanitizer.MustPreset(sanitizer.PresetSpecific)
//	clean, report := sanitizer.Run(text, rules...)
//	// report.Total == number of characters removed
//
// Run applies rules strictly in order. Later rules operate on the output of
// earlier ones, so ordering is observable: the "final" preset substitutes a
// run of sixteen bullets before it substitutes single bullets.
//
// # Presets
//
// Named rule lists are available through Preset and PresetNames:
// specific, crlf, unicode, accents, fold, all-unicode and final.
//
// # Error handling
//
// Rules never fail at apply time. Constructors that take user input (Regexp,
// Preset) return ErrInvalidPattern or ErrUnknownPreset.
//
// The package holds no mutable state and is safe for concurrent use.
package sanitizer
