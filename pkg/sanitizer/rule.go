package sanitizer

import (
	"unicode/utf8"
)

// Rule rewrites every occurrence of Pattern with Replacement.
// An empty Replacement deletes the matches.
type Rule struct {
	Name        string
	Pattern     Pattern
	Replacement string
}

// Remove returns a deletion rule.
func Remove(name string, p Pattern) Rule {
	return Rule{Name: name, Pattern: p}
}

// Substitute returns a rule that replaces matches of p with repl.
func Substitute(name string, p Pattern, repl string) Rule {
	return Rule{Name: name, Pattern: p, Replacement: repl}
}

// Apply rewrites s and reports how many matches were affected.
// A rule without a pattern is a no-op.
func (r Rule) Apply(s string) (string, int) {
	if r.Pattern == nil {
		return s, 0
	}
	return r.Pattern.Replace(s, r.Replacement)
}

// RuleResult is the outcome of a single rule within a run.
type RuleResult struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Report summarises a run. Lengths are counted in characters (runes) and bytes.
type Report struct {
	Rules          []RuleResult `json:"rules"`
	Total          int          `json:"total"`
	OriginalLength int          `json:"original_length"`
	FinalLength    int          `json:"final_length"`
	OriginalBytes  int          `json:"original_bytes"`
	FinalBytes     int          `json:"final_bytes"`
}

// Changed reports whether any rule matched.
func (r Report) Changed() bool {
	return r.Total > 0
}

// Count returns the number of matches recorded for the named rule.
// Rules sharing a name are summed.
func (r Report) Count(name string) int {
	n := 0
	for _, rr := range r.Rules {
		if rr.Name == name {
			n += rr.Count
		}
	}
	return n
}

// Run applies rules to text strictly in the given order; each rule sees the
// output of the rules before it.
func Run(text string, rules ...Rule) (string, Report) {
	report := Report{
		Rules:          make([]RuleResult, 0, len(rules)),
		OriginalLength: utf8.RuneCountInString(text),
		OriginalBytes:  len(text),
	}

	steps := make([]func(string) string, 0, len(rules))
	for _, rule := range rules {
		steps = append(steps, func(s string) string {
			out, n := rule.Apply(s)
			report.Rules = append(report.Rules, RuleResult{Name: rule.Name, Count: n})
			report.Total += n
			return out
		})
	}

	out := Apply(text, steps...)
	report.FinalLength = utf8.RuneCountInString(out)
	report.FinalBytes = len(out)

	return out, report
}
