package sanitizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Pattern finds occurrences in a document and rewrites them.
// Replace returns the rewritten text together with the number of matches.
type Pattern interface {
	Replace(s, repl string) (string, int)
	String() string
}

// Literal matches a fixed run of text. Matches are found leftmost-first and
// never overlap, the same way strings.ReplaceAll scans.
func Literal(s string) Pattern {
	return literalPattern(s)
}

type literalPattern string

func (p literalPattern) Replace(s, repl string) (string, int) {
	if p == "" {
		return s, 0
	}
	n := strings.Count(s, string(p))
	if n == 0 {
		return s, 0
	}
	return strings.ReplaceAll(s, string(p), repl), n
}

func (p literalPattern) String() string {
	return fmt.Sprintf("literal %q", string(p))
}

// Codepoint matches a single Unicode codepoint.
func Codepoint(r rune) Pattern {
	return &runePattern{
		desc:  FormatCodepoint(r),
		match: func(c rune) bool { return c == r },
	}
}

// Range matches every codepoint in [lo, hi].
func Range(lo, hi rune) Pattern {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &runePattern{
		desc:  FormatCodepoint(lo) + ".." + FormatCodepoint(hi),
		match: func(c rune) bool { return c >= lo && c <= hi },
	}
}

// Set matches any of the given codepoints.
func Set(rs ...rune) Pattern {
	set := make(map[rune]struct{}, len(rs))
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		if _, ok := set[r]; ok {
			continue
		}
		set[r] = struct{}{}
		parts = append(parts, FormatCodepoint(r))
	}
	return &runePattern{
		desc: "set [" + strings.Join(parts, " ") + "]",
		match: func(c rune) bool {
			_, ok := set[c]
			return ok
		},
	}
}

// Class matches members of a Unicode range table, e.g. unicode.So.
func Class(name string, table *unicode.RangeTable) Pattern {
	return &runePattern{
		desc:  "class " + name,
		match: func(c rune) bool { return unicode.Is(table, c) },
	}
}

type runePattern struct {
	desc  string
	match func(rune) bool
}

func (p *runePattern) Replace(s, repl string) (string, int) {
	return rewrite(s, func(r rune) (string, bool) {
		if p.match(r) {
			return repl, true
		}
		return "", false
	})
}

func (p *runePattern) String() string {
	return p.desc
}

// Regexp matches an RE2 expression. The replacement is inserted literally,
// "$1" is not expanded.
func Regexp(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &regexpPattern{re: re}, nil
}

// MustRegexp is like Regexp but panics if expr does not compile.
func MustRegexp(expr string) Pattern {
	p, err := Regexp(expr)
	if err != nil {
		panic(err)
	}
	return p
}

type regexpPattern struct {
	re *regexp.Regexp
}

func (p *regexpPattern) Replace(s, repl string) (string, int) {
	n := 0
	out := p.re.ReplaceAllStringFunc(s, func(string) string {
		n++
		return repl
	})
	if n == 0 {
		return s, 0
	}
	return out, n
}

func (p *regexpPattern) String() string {
	return "regexp " + p.re.String()
}

// Translate substitutes each mapped codepoint with its own replacement.
// The rule replacement is not used.
func Translate(table map[rune]string) Pattern {
	return &translatePattern{table: table, size: len(table)}
}

type translatePattern struct {
	table map[rune]string
	size  int
}

func (p *translatePattern) Replace(s, _ string) (string, int) {
	return rewrite(s, func(r rune) (string, bool) {
		to, ok := p.table[r]
		return to, ok
	})
}

func (p *translatePattern) String() string {
	return fmt.Sprintf("translate (%d codepoints)", p.size)
}

// FoldMarks matches codepoints whose canonical decomposition carries
// combining marks and replaces each with its base letters ("ã" -> "a").
// The rule replacement is not used.
func FoldMarks() Pattern {
	return foldPattern{}
}

type foldPattern struct{}

func (foldPattern) Replace(s, _ string) (string, int) {
	return rewrite(s, func(r rune) (string, bool) {
		if r < utf8.RuneSelf {
			return "", false
		}
		return foldRune(r)
	})
}

func (foldPattern) String() string {
	return "fold combining marks"
}

// foldRune strips nonspacing marks from the decomposition of r. A lone mark
// folds to the empty string. Singleton decompositions without a mark, such
// as U+2126 OHM SIGN, do not match. Transform chains keep state, so one is
// built per call.
func foldRune(r rune) (string, bool) {
	src := string(r)
	if !hasMark(norm.NFD.String(src)) {
		return "", false
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, src)
	if err != nil || out == src {
		return "", false
	}
	return out, true
}

func hasMark(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return unicode.Is(unicode.Mn, r) }) >= 0
}

// rewrite substitutes every rune for which fn reports a match. Bytes that
// are not matched, invalid UTF-8 included, are copied through untouched.
func rewrite(s string, fn func(rune) (string, bool)) (string, int) {
	var b strings.Builder
	n := 0
	last := 0

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i += size
			continue
		}
		if to, ok := fn(r); ok {
			if n == 0 {
				b.Grow(len(s))
			}
			b.WriteString(s[last:i])
			b.WriteString(to)
			last = i + size
			n++
		}
		i += size
	}

	if n == 0 {
		return s, 0
	}
	b.WriteString(s[last:])
	return b.String(), n
}

// FormatCodepoint renders r in U+XXXX notation.
func FormatCodepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
