package profile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/unicleaner/pkg/sanitizer"
)

// Rule kinds accepted in profiles.
const (
	KindLiteral   = "literal"
	KindCodepoint = "codepoint"
	KindRange     = "range"
	KindSet       = "set"
	KindClass     = "class"
	KindRegexp    = "regexp"
	KindTranslate = "translate"
	KindFold      = "fold"
)

// Profile names a target document and the ordered rules applied to it.
type Profile struct {
	Name    string    `yaml:"name"`
	Path    string    `yaml:"path"`
	Presets []string  `yaml:"presets" validate:"dive,required"`
	Rules   []RuleDef `yaml:"rules" validate:"dive"`
}

// RuleDef is the YAML form of a sanitizer rule. Which fields are read
// depends on Kind:
//
//	literal    value
//	codepoint  value
//	range      from, to
//	set        values
//	class      value (category or script name, e.g. "So", "Han")
//	regexp     value
//	translate  table
//	fold       (none)
type RuleDef struct {
	Name        string            `yaml:"name" validate:"required"`
	Kind        string            `yaml:"kind" validate:"required,oneof=literal codepoint range set class regexp translate fold"`
	Value       string            `yaml:"value"`
	From        string            `yaml:"from" validate:"omitempty,codepoint"`
	To          string            `yaml:"to" validate:"omitempty,codepoint"`
	Values      []string          `yaml:"values" validate:"omitempty,dive,codepoint"`
	Table       map[string]string `yaml:"table" validate:"omitempty,dive,keys,codepoint,endkeys"`
	Replacement string            `yaml:"replacement"`
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseProfile, err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads and parses the profile at path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadProfile, err)
	}
	return Parse(data)
}

// Build expands presets first, then appends inline rules in file order.
func (p *Profile) Build() ([]sanitizer.Rule, error) {
	var rules []sanitizer.Rule
	for _, name := range p.Presets {
		preset, err := sanitizer.Preset(name)
		if err != nil {
			return nil, err
		}
		rules = append(rules, preset...)
	}
	for i, def := range p.Rules {
		rule, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("rules[%d] %q: %w", i, def.Name, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Build converts the definition into a sanitizer rule.
func (d RuleDef) Build() (sanitizer.Rule, error) {
	var (
		pattern sanitizer.Pattern
		err     error
	)

	switch d.Kind {
	case KindLiteral:
		if d.Value == "" {
			return sanitizer.Rule{}, fmt.Errorf("%w: literal requires value", ErrInvalidProfile)
		}
		pattern = sanitizer.Literal(d.Value)
	case KindCodepoint:
		r, perr := ParseCodepoint(d.Value)
		if perr != nil {
			return sanitizer.Rule{}, perr
		}
		pattern = sanitizer.Codepoint(r)
	case KindRange:
		lo, perr := ParseCodepoint(d.From)
		if perr != nil {
			return sanitizer.Rule{}, perr
		}
		hi, perr := ParseCodepoint(d.To)
		if perr != nil {
			return sanitizer.Rule{}, perr
		}
		pattern = sanitizer.Range(lo, hi)
	case KindSet:
		if len(d.Values) == 0 {
			return sanitizer.Rule{}, fmt.Errorf("%w: set requires values", ErrInvalidProfile)
		}
		rs := make([]rune, 0, len(d.Values))
		for _, v := range d.Values {
			r, perr := ParseCodepoint(v)
			if perr != nil {
				return sanitizer.Rule{}, perr
			}
			rs = append(rs, r)
		}
		pattern = sanitizer.Set(rs...)
	case KindClass:
		table, ok := lookupClass(d.Value)
		if !ok {
			return sanitizer.Rule{}, fmt.Errorf("%w: %q", ErrUnknownClass, d.Value)
		}
		pattern = sanitizer.Class(d.Value, table)
	case KindRegexp:
		pattern, err = sanitizer.Regexp(d.Value)
		if err != nil {
			return sanitizer.Rule{}, err
		}
	case KindTranslate:
		if len(d.Table) == 0 {
			return sanitizer.Rule{}, fmt.Errorf("%w: translate requires table", ErrInvalidProfile)
		}
		table := make(map[rune]string, len(d.Table))
		for k, v := range d.Table {
			r, perr := ParseCodepoint(k)
			if perr != nil {
				return sanitizer.Rule{}, perr
			}
			table[r] = v
		}
		pattern = sanitizer.Translate(table)
	case KindFold:
		pattern = sanitizer.FoldMarks()
	default:
		return sanitizer.Rule{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidProfile, d.Kind)
	}

	return sanitizer.Substitute(d.Name, pattern, d.Replacement), nil
}

// ParseCodepoint accepts "U+200B", "0x200B" or a single literal character.
func ParseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidCodepoint)
	}

	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r != utf8.RuneError {
			return r, nil
		}
	}

	upper := strings.ToUpper(s)
	var digits string
	switch {
	case strings.HasPrefix(upper, "U+"):
		digits = upper[2:]
	case strings.HasPrefix(upper, "0X"):
		digits = upper[2:]
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodepoint, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > unicode.MaxRune {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodepoint, s)
	}
	return rune(v), nil
}

func lookupClass(name string) (*unicode.RangeTable, bool) {
	if t, ok := unicode.Categories[name]; ok {
		return t, true
	}
	if t, ok := unicode.Scripts[name]; ok {
		return t, true
	}
	if t, ok := unicode.Properties[name]; ok {
		return t, true
	}
	return nil, false
}
