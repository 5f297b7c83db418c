// Package unicleaner strips and substitutes Unicode characters that break
// script parsing in browsers: zero-width characters, line and paragraph
// separators, byte order marks, carriage returns, emoji and typographic glyphs.
//
// The module is organized as small packages wired together by a CLI:
//
//   - pkg/sanitizer: patterns, ordered rule application with per-rule counts,
//     and built-in presets
//   - pkg/inspect: read-only diagnostics (single line, whole document, known problems)
//   - pkg/document: whole-file I/O through local or S3 stores, BLAKE3 checksums
//   - pkg/profile: YAML rule profiles
//   - pkg/config, pkg/logger, pkg/environment: configuration and structured logging
//   - svc/cleaner: read, transform and write a document with logging
//   - cmd/unicleaner: the command-line interface
//
// Basic Usage:
//
//	rules := sanitizer.MustPreset(sanitizer.PresetSpecific)
//	text, report := sanitizer.Run(input, rules...)
//	fmt.Println(report.Total, report.OriginalLength, report.FinalLength)
//
// From the command line:
//
//	unicleaner clean --preset specific,crlf src/index-site.js
//	unicleaner inspect-line --line 2246 src/index-site.js
//	unicleaner analyze --limit 20
package unicleaner
