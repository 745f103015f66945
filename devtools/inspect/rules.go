package inspect

import "unicode/utf16"

// rule classifies a single code unit. Rules are tried in order and the first match wins, which
// matters where ranges overlap: U+3000 is also inside the full-width range.
type rule struct {
	category Category
	match    func(u uint16) bool
	display  func(u uint16) string
}

var rules = []rule{
	{Space, is(' '), verbatim},
	{FullwidthSpace, is('\u3000'), verbatim},
	{Tab, is('\t'), glyph("→")},
	{Newline, is('\n'), glyph("↵")},
	{CarriageReturn, is('\r'), glyph("⏎")},
	{Fullwidth, func(u uint16) bool { return u > 0x00FF && u <= 0xFFEF }, verbatim},
	{Control, func(u uint16) bool { return u < 0x20 || u == 0x7F }, glyph("␣")},
}

func match(u uint16) *rule {
	for i := range rules {
		if rules[i].match(u) {
			return &rules[i]
		}
	}
	return nil
}

func is(c uint16) func(uint16) bool {
	return func(u uint16) bool { return u == c }
}

func glyph(s string) func(uint16) string {
	return func(uint16) string { return s }
}

// verbatim returns the code unit as a string. A lone surrogate half has no string representation
// and becomes U+FFFD.
func verbatim(u uint16) string {
	if utf16.IsSurrogate(rune(u)) {
		return "\uFFFD"
	}
	return string(rune(u))
}
