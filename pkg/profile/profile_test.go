package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/unicleaner/pkg/profile"
	"github.com/dmitrymomot/unicleaner/pkg/sanitizer"
)

const siteProfile = `
name: site
path: src/index-site.js
presets: [specific, crlf]
rules:
  - name: nbsp
    kind: codepoint
    value: "U+00A0"
    replacement: " "
  - name: arrows
    kind: range
    from: "0x2190"
    to: "U+21FF"
  - name: checks
    kind: set
    values: ["✅", "U+274C"]
    replacement: "[x]"
  - name: symbols
    kind: class
    value: So
  - name: todo
    kind: literal
    value: "TODO"
    replacement: "NOTE"
  - name: digits
    kind: regexp
    value: '\d{4}'
    replacement: "YYYY"
  - name: currency
    kind: translate
    table:
      "€": "EUR"
      "U+00A3": "GBP"
  - name: marks
    kind: fold
`

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := profile.Parse([]byte(siteProfile))
	require.NoError(t, err)

	assert.Equal(t, "site", p.Name)
	assert.Equal(t, "src/index-site.js", p.Path)
	assert.Equal(t, []string{"specific", "crlf"}, p.Presets)
	require.Len(t, p.Rules, 8)

	rules, err := p.Build()
	require.NoError(t, err)
	require.Len(t, rules, 6+1+8)
	assert.Equal(t, "zero-width space", rules[0].Name)
	assert.Equal(t, "carriage return", rules[6].Name)
	assert.Equal(t, "nbsp", rules[7].Name)
	assert.Equal(t, "marks", rules[14].Name)

	input := "TODO\u00A0€5 £3 ← ✅ ❌ ♥ 2024 ação\r\n"
	out, report := sanitizer.Run(input, rules...)
	assert.Equal(t, "NOTE EUR5 GBP3  [x] [x]  YYYY acao\n", out)
	assert.Equal(t, 1, report.Count("nbsp"))
	assert.Equal(t, 2, report.Count("checks"))
	assert.Equal(t, 1, report.Count("symbols"))
	assert.Equal(t, 2, report.Count("marks"))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty profile", yaml: "name: x\n"},
		{name: "missing rule name", yaml: "rules:\n  - kind: fold\n"},
		{name: "unknown kind", yaml: "rules:\n  - name: a\n    kind: magic\n"},
		{name: "bad range bound", yaml: "rules:\n  - name: a\n    kind: range\n    from: nope\n    to: U+0010\n"},
		{name: "bad set member", yaml: "rules:\n  - name: a\n    kind: set\n    values: [\"ab\"]\n"},
		{name: "bad table key", yaml: "rules:\n  - name: a\n    kind: translate\n    table:\n      xyz: \"\"\n"},
		{name: "empty preset name", yaml: "presets: [\"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := profile.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, profile.ErrInvalidProfile)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := profile.Parse([]byte("rules: [\n"))
	assert.ErrorIs(t, err, profile.ErrFailedToParseProfile)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		def      profile.RuleDef
		expected error
	}{
		{name: "literal without value", def: profile.RuleDef{Name: "a", Kind: profile.KindLiteral}, expected: profile.ErrInvalidProfile},
		{name: "codepoint without value", def: profile.RuleDef{Name: "a", Kind: profile.KindCodepoint}, expected: profile.ErrInvalidCodepoint},
		{name: "range without bounds", def: profile.RuleDef{Name: "a", Kind: profile.KindRange}, expected: profile.ErrInvalidCodepoint},
		{name: "empty set", def: profile.RuleDef{Name: "a", Kind: profile.KindSet}, expected: profile.ErrInvalidProfile},
		{name: "unknown class", def: profile.RuleDef{Name: "a", Kind: profile.KindClass, Value: "Klingon"}, expected: profile.ErrUnknownClass},
		{name: "bad regexp", def: profile.RuleDef{Name: "a", Kind: profile.KindRegexp, Value: "("}, expected: sanitizer.ErrInvalidPattern},
		{name: "empty table", def: profile.RuleDef{Name: "a", Kind: profile.KindTranslate}, expected: profile.ErrInvalidProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.def.Build()
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	p := &profile.Profile{Presets: []string{"missing"}}
	_, err := p.Build()
	assert.ErrorIs(t, err, sanitizer.ErrUnknownPreset)
}

func TestParseCodepoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected rune
		ok       bool
	}{
		{input: "U+200B", expected: 0x200B, ok: true},
		{input: "u+feff", expected: 0xFEFF, ok: true},
		{input: "0x1F680", expected: 0x1F680, ok: true},
		{input: "•", expected: '•', ok: true},
		{input: " x ", expected: 'x', ok: true},
		{input: "", ok: false},
		{input: "U+", ok: false},
		{input: "U+110000", ok: false},
		{input: "abc", ok: false},
	}

	for _, tt := range tests {
		r, err := profile.ParseCodepoint(tt.input)
		if !tt.ok {
			assert.ErrorIs(t, err, profile.ErrInvalidCodepoint, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, r, tt.input)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets: [final]\n"), 0o644))

	p, err := profile.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"final"}, p.Presets)

	_, err = profile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, profile.ErrFailedToReadProfile)
}
