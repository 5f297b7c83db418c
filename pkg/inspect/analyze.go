package inspect

import (
	"strings"
	"unicode/utf8"
)

// DefaultLimit is the number of occurrences Analyze lists when no limit is given.
const DefaultLimit = 10

// Occurrence is a character found at a position in the document.
type Occurrence struct {
	Line      int    `json:"line"`
	Position  int    `json:"position"`
	Value     string `json:"char"`
	Codepoint rune   `json:"codepoint"`
	Hex       string `json:"hex"`
}

// CharCount is one histogram bucket.
type CharCount struct {
	Value     string `json:"char"`
	Codepoint rune   `json:"codepoint"`
	Hex       string `json:"hex"`
	Count     int    `json:"count"`
}

// SuspiciousLine is a line that looks like it carries a parse error or
// stray control characters.
type SuspiciousLine struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
	Reason  string `json:"reason,omitempty"`
}

// Summary is the whole-document report.
type Summary struct {
	Lines      int              `json:"lines"`
	Characters int              `json:"characters"`
	Bytes      int              `json:"bytes"`
	NonASCII   int              `json:"non_ascii"`
	Histogram  []CharCount      `json:"histogram"`
	First      []Occurrence     `json:"first"`
	Suspicious []SuspiciousLine `json:"suspicious"`
	ValidUTF8  bool             `json:"valid_utf8"`
}

// Truncated reports whether more non-ASCII occurrences exist than First holds.
func (s *Summary) Truncated() bool {
	return s.NonASCII > len(s.First)
}

var errorMarkers = []string{"Uncaught", "SyntaxError", "Invalid or unexpected token"}

const (
	suspiciousPreview = 100
	reasonControl     = "contains control characters"
)

// Analyze reports non-ASCII characters (codepoints above 127) and suspicious
// lines. limit caps the number of listed occurrences; values below 1 use
// DefaultLimit.
func Analyze(text string, limit int) *Summary {
	if limit < 1 {
		limit = DefaultLimit
	}

	s := &Summary{
		Characters: utf8.RuneCountInString(text),
		Bytes:      len(text),
		ValidUTF8:  utf8.ValidString(text),
		Histogram:  []CharCount{},
		First:      []Occurrence{},
		Suspicious: []SuspiciousLine{},
	}

	buckets := make(map[rune]int)
	line, pos := 1, 0
	for _, r := range text {
		if r > MaxPrintable {
			s.NonASCII++
			if i, ok := buckets[r]; ok {
				s.Histogram[i].Count++
			} else {
				buckets[r] = len(s.Histogram)
				s.Histogram = append(s.Histogram, CharCount{Value: string(r), Codepoint: r, Hex: Hex(r), Count: 1})
			}
			if len(s.First) < limit {
				s.First = append(s.First, Occurrence{Line: line, Position: pos, Value: string(r), Codepoint: r, Hex: Hex(r)})
			}
		}
		if r == '\n' {
			line++
		}
		pos++
	}

	lines := strings.Split(text, "\n")
	s.Lines = len(lines)
	for i, l := range lines {
		if hasErrorMarker(l) {
			s.Suspicious = append(s.Suspicious, SuspiciousLine{Number: i + 1, Content: strings.TrimSpace(l)})
		}
		if strings.ContainsAny(l, "\r\t\v\f") {
			s.Suspicious = append(s.Suspicious, SuspiciousLine{
				Number:  i + 1,
				Content: preview(strings.TrimSpace(l), suspiciousPreview),
				Reason:  reasonControl,
			})
		}
	}

	return s
}

func hasErrorMarker(line string) bool {
	for _, m := range errorMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// Known problem codepoints reported by Scan.
var knownProblems = map[rune]string{
	0xFEFF: "byte order mark",
	0x200B: "zero-width space",
	0x200C: "zero-width non-joiner",
	0x200D: "zero-width joiner",
	0x2028: "line separator",
	0x2029: "paragraph separator",
	0x2018: "left single quotation mark",
	0x2019: "right single quotation mark",
	0x201C: "left double quotation mark",
	0x201D: "right double quotation mark",
	0x2013: "en dash",
	0x2014: "em dash",
	0x2026: "horizontal ellipsis",
}

// Finding is an occurrence of a codepoint that tends to break script parsing.
type Finding struct {
	Occurrence
	Name string `json:"name"`
}

// Scan lists every known problem codepoint and every other non-ASCII
// character except the no-break space.
func Scan(text string) []Finding {
	var out []Finding
	line, pos := 1, 0
	for _, r := range text {
		name, known := knownProblems[r]
		if known || (r > MaxPrintable && r != 0x00A0) {
			if !known {
				name = "non-ASCII"
			}
			out = append(out, Finding{
				Occurrence: Occurrence{Line: line, Position: pos, Value: string(r), Codepoint: r, Hex: Hex(r)},
				Name:       name,
			})
		}
		if r == '\n' {
			line++
		}
		pos++
	}
	return out
}
