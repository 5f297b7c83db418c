package sanitizer

import (
	"fmt"
	"sort"
	"strings"
)

// Preset names.
const (
	PresetSpecific   = "specific"
	PresetCRLF       = "crlf"
	PresetUnicode    = "unicode"
	PresetAccents    = "accents"
	PresetFold       = "fold"
	PresetAllUnicode = "all-unicode"
	PresetFinal      = "final"
)

// Codepoints that break script parsing in browsers.
const (
	ZeroWidthSpace     = '\u200B'
	ZeroWidthNonJoiner = '\u200C'
	ZeroWidthJoiner    = '\u200D'
	LineSeparator      = '\u2028'
	ParagraphSeparator = '\u2029'
	ByteOrderMark      = '\uFEFF'
	NoBreakSpace       = '\u00A0'
	CarriageReturn     = '\r'
	VariationSelector  = '\uFE0F'
)

// AccentMap folds Portuguese accented letters and a few symbols to ASCII.
var AccentMap = map[rune]string{
	'á': "a", 'à': "a", 'â': "a", 'ã': "a", 'ä': "a",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'í': "i", 'ì': "i", 'î': "i", 'ï': "i",
	'ó': "o", 'ò': "o", 'ô': "o", 'õ': "o", 'ö': "o",
	'ú': "u", 'ù': "u", 'û': "u", 'ü': "u",
	'ç': "c", 'ñ': "n",
	'Á': "A", 'À': "A", 'Â': "A", 'Ã': "A", 'Ä': "A",
	'É': "E", 'È': "E", 'Ê': "E", 'Ë': "E",
	'Í': "I", 'Ì': "I", 'Î': "I", 'Ï': "I",
	'Ó': "O", 'Ò': "O", 'Ô': "O", 'Õ': "O", 'Ö': "O",
	'Ú': "U", 'Ù': "U", 'Û': "U", 'Ü': "U",
	'Ç': "C", 'Ñ': "N",
	'º': "o", 'ª': "a", '€': "EUR",
}

type preset struct {
	description string
	rules       func() []Rule
}

var presets = map[string]preset{
	PresetSpecific: {
		description: "remove zero-width characters, line/paragraph separators and BOM",
		rules:       specificRules,
	},
	PresetCRLF: {
		description: "remove carriage returns",
		rules: func() []Rule {
			return []Rule{Remove("carriage return", Codepoint(CarriageReturn))}
		},
	},
	PresetUnicode: {
		description: "remove emoji, symbols and control characters, then fold accents",
		rules: func() []Rule {
			return append(symbolRules(), accentRule())
		},
	},
	PresetAccents: {
		description: "replace accented letters with ASCII equivalents",
		rules: func() []Rule {
			return []Rule{accentRule()}
		},
	},
	PresetFold: {
		description: "strip combining marks from any decomposable letter",
		rules: func() []Rule {
			return []Rule{Remove("combining marks", FoldMarks())}
		},
	},
	PresetAllUnicode: {
		description: "fold accents, then remove every emoji, symbol and typographic character",
		rules:       allUnicodeRules,
	},
	PresetFinal: {
		description: "replace leftover glyphs with text markers",
		rules:       finalRules,
	},
}

// Preset returns a fresh copy of the named rule list.
func Preset(name string) ([]Rule, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return p.rules(), nil
}

// MustPreset is like Preset but panics on an unknown name.
func MustPreset(name string) []Rule {
	rules, err := Preset(name)
	if err != nil {
		panic(err)
	}
	return rules
}

// PresetNames lists the available presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetDescription returns a one-line summary of the named preset.
func PresetDescription(name string) string {
	return presets[name].description
}

func specificRules() []Rule {
	return []Rule{
		Remove("zero-width space", Codepoint(ZeroWidthSpace)),
		Remove("zero-width non-joiner", Codepoint(ZeroWidthNonJoiner)),
		Remove("zero-width joiner", Codepoint(ZeroWidthJoiner)),
		Remove("line separator", Codepoint(LineSeparator)),
		Remove("paragraph separator", Codepoint(ParagraphSeparator)),
		Remove("byte order mark", Codepoint(ByteOrderMark)),
	}
}

func symbolRules() []Rule {
	return []Rule{
		Remove("emoji", Range(0x1F300, 0x1F9FF)),
		Remove("miscellaneous symbols", Range(0x2600, 0x26FF)),
		Remove("dingbats", Range(0x2700, 0x27BF)),
		Remove("transport and map symbols", Range(0x1F680, 0x1F6FF)),
		Remove("regional indicators", Range(0x1F1E0, 0x1F1FF)),
		Remove("supplemental symbols", Range(0x1F900, 0x1F9FF)),
		Remove("extended pictographs", Range(0x1FA70, 0x1FAFF)),
		Remove("arrows", Range(0x2190, 0x21FF)),
		Remove("miscellaneous symbols and arrows", Range(0x2B00, 0x2BFF)),
		Remove("geometric shapes", Range(0x25A0, 0x25FF)),
		Remove("no-break space", Codepoint(NoBreakSpace)),
		Remove("zero-width characters", Range(ZeroWidthSpace, ZeroWidthJoiner)),
		Remove("line and paragraph separators", Range(LineSeparator, ParagraphSeparator)),
		Remove("byte order mark", Codepoint(ByteOrderMark)),
		Remove("control characters", Range(0x00, 0x08)),
		Remove("control characters", Range(0x0B, 0x1F)),
		Remove("extended control characters", Range(0x7F, 0x9F)),
	}
}

func accentRule() Rule {
	return Remove("accented letters", Translate(AccentMap))
}

func allUnicodeRules() []Rule {
	rules := []Rule{
		accentRule(),
		Remove("emoji", Range(0x1F300, 0x1F9FF)),
		Remove("miscellaneous symbols", Range(0x2600, 0x26FF)),
		Remove("dingbats", Range(0x2700, 0x27BF)),
		Remove("transport and map symbols", Range(0x1F680, 0x1F6FF)),
		Remove("supplemental symbols", Range(0x1F900, 0x1F9FF)),
		Remove("extended pictographs", Range(0x1FA70, 0x1FAFF)),
		Remove("arrows", Range(0x2190, 0x21FF)),
		Remove("miscellaneous symbols and arrows", Range(0x2B00, 0x2BFF)),
		Remove("geometric shapes", Range(0x25A0, 0x25FF)),
		Remove("zero-width characters", Range(ZeroWidthSpace, ZeroWidthJoiner)),
		Remove("line and paragraph separators", Range(LineSeparator, ParagraphSeparator)),
		Remove("byte order mark", Codepoint(ByteOrderMark)),
		Remove("no-break space", Codepoint(NoBreakSpace)),
		Remove("horizontal ellipsis", Codepoint('…')),
		Remove("en and em dash", Range('–', '—')),
		Remove("smart single quotes", Range('‘', '’')),
		Remove("smart double quotes", Range('“', '”')),
		Remove("infinity", Codepoint('∞')),
		Remove("bullet", Codepoint('•')),
		Remove("clock symbols", Set('⏰', '⏳', '⏹')),
		Remove("emoji glyphs", Set('⚙', 'ℹ', '✅', '❌', '✕', '✈', '⚔', '⚽')),
		Remove("variation selector", Codepoint(VariationSelector)),
		Remove("left arrow", Codepoint('←')),
		Remove("right arrow", Codepoint('→')),
	}
	return rules
}

// finalRules substitutes the sixteen-bullet password mask before single
// bullets, otherwise the mask would turn into dashes.
func finalRules() []Rule {
	return []Rule{
		Substitute("alarm clock", Codepoint('⏰'), "[TEMPO]"),
		Substitute("hourglass", Codepoint('⏳'), "[AGUARDANDO]"),
		Substitute("stop button", Codepoint('⏹'), "[PARAR]"),
		Substitute("information source", Codepoint('ℹ'), "[INFO]"),
		Substitute("infinity", Codepoint('∞'), "INFINITO"),
		Substitute("bullet mask", Literal(strings.Repeat("•", 16)), strings.Repeat("*", 16)),
		Substitute("bullet", Codepoint('•'), "-"),
	}
}
