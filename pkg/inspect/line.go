package inspect

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Printable ASCII bounds, inclusive.
const (
	MinPrintable = 32
	MaxPrintable = 127
)

// Char describes a single character of a line.
type Char struct {
	Position    int    `json:"position"`
	Value       string `json:"char"`
	Codepoint   rune   `json:"codepoint"`
	Hex         string `json:"hex"`
	Problematic bool   `json:"problematic"`
}

// LineReport is the result of inspecting one line.
type LineReport struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Length int    `json:"length"`
	Chars  []Char `json:"chars"`
}

// Problematic returns the characters outside printable ASCII.
func (r *LineReport) Problematic() []Char {
	var out []Char
	for _, c := range r.Chars {
		if c.Problematic {
			out = append(out, c)
		}
	}
	return out
}

// IsProblematic reports whether r lies outside printable ASCII.
func IsProblematic(r rune) bool {
	return r < MinPrintable || r > MaxPrintable
}

// Hex renders r as 0xXX, uppercase.
func Hex(r rune) string {
	return fmt.Sprintf("0x%X", r)
}

// Line inspects line n (one-based) of text.
func Line(text string, n int) (*LineReport, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLine, n)
	}

	line, ok := nthLine(text, n)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrLineNotFound, n)
	}

	report := &LineReport{
		Number: n,
		Text:   line,
		Length: utf8.RuneCountInString(line),
		Chars:  make([]Char, 0, len(line)),
	}

	pos := 0
	for _, r := range line {
		report.Chars = append(report.Chars, Char{
			Position:    pos,
			Value:       string(r),
			Codepoint:   r,
			Hex:         Hex(r),
			Problematic: IsProblematic(r),
		})
		pos++
	}

	return report, nil
}

// nthLine returns line n without scanning past it.
func nthLine(text string, n int) (string, bool) {
	rest := text
	for i := 1; i < n; i++ {
		idx := strings.IndexByte(rest, '\n')
		if idx < 0 {
			return "", false
		}
		rest = rest[idx+1:]
	}
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		return rest[:idx], true
	}
	return rest, true
}

// CountLines counts lines the way strings.Split(text, "\n") would.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}
