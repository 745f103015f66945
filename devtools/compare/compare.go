// Package compare compares two texts line by line and reports simple statistics about both.
//
// The default comparison is index-aligned: line i of the first text is compared with line i of the
// second text, no matter what happened before. A single line inserted at the top therefore marks
// every following line as changed. [WithAlgorithm] with [Myers] opts into a content-aligned
// comparison instead.
package compare

import (
	"errors"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrEmptyInput is returned by Compare if both inputs are empty or only contain whitespace.
var ErrEmptyInput = errors.New("both inputs empty")

// Op describes how a line of the diff listing relates to the inputs.
type Op int

const (
	Equal   Op = iota // Line is the same in both inputs
	Removed           // Line from the first input that differs from the second
	Added             // Line from the second input that differs from the first
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "equal"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (op Op) MarshalText() ([]byte, error) { return []byte(op.String()), nil }

// Edit is a single line of the diff listing.
type Edit struct {
	Op   Op     `json:"op"`
	Text string `json:"text"` // Line without marker
}

// Line returns the line as it appears in the diff listing.
func (e Edit) Line() string {
	switch e.Op {
	case Removed:
		return "- " + e.Text
	case Added:
		return "+ " + e.Text
	default:
		return e.Text
	}
}

// Stats are simple statistics about a single input.
type Stats struct {
	Characters int `json:"characters"` // UTF-16 code units
	Words      int `json:"words"`
	Lines      int `json:"lines"` // Segments separated by '\n', a trailing newline counts
}

// Result is the outcome of a single comparison.
type Result struct {
	Differences int      `json:"differences"`
	Lines       []string `json:"diffLines"`
	Edits       []Edit   `json:"edits"`
	StatsA      Stats    `json:"statsA"`
	StatsB      Stats    `json:"statsB"`
}

// Text returns the diff listing as a single string.
func (r *Result) Text() string { return strings.Join(r.Lines, "\n") }

// Identical reports whether both inputs are the same.
func (r *Result) Identical() bool { return r.Differences == 0 }

// Option configures Compare.
type Option func(*options)

type options struct {
	algorithm Algorithm
}

// WithAlgorithm selects the algorithm used to build the diff listing.
func WithAlgorithm(algo Algorithm) Option {
	return func(o *options) {
		o.algorithm = algo
	}
}

// Compare compares a and b.
func Compare(a, b string, opts ...Option) (*Result, error) {
	if isBlank(a) && isBlank(b) {
		return nil, ErrEmptyInput
	}

	o := options{algorithm: Aligned}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	ua := codeUnits(a)
	ub := codeUnits(b)

	linesA := strings.Split(a, "\n")
	linesB := strings.Split(b, "\n")

	var edits []Edit
	switch o.algorithm {
	case Myers:
		edits = myers(linesA, linesB)
	default:
		edits = aligned(linesA, linesB)
	}

	lines := make([]string, 0, len(edits))
	for _, e := range edits {
		lines = append(lines, e.Line())
	}

	return &Result{
		Differences: differences(ua, ub),
		Lines:       lines,
		Edits:       edits,
		StatsA:      stats(a, len(ua)),
		StatsB:      stats(b, len(ub)),
	}, nil
}

func aligned(x, y []string) []Edit {
	n := max(len(x), len(y))
	edits := make([]Edit, 0, n)
	for i := range n {
		var lx, ly string
		if i < len(x) {
			lx = x[i]
		}
		if i < len(y) {
			ly = y[i]
		}
		if lx == ly {
			edits = append(edits, Edit{Equal, lx})
			continue
		}
		edits = append(edits, Edit{Removed, lx}, Edit{Added, ly})
	}
	return edits
}

func differences(x, y []uint16) int {
	n := 0
	for i := range max(len(x), len(y)) {
		if i >= len(x) || i >= len(y) || x[i] != y[i] {
			n++
		}
	}
	return n
}

func stats(s string, units int) Stats {
	return Stats{
		Characters: units,
		Words:      len(strings.FieldsFunc(s, isSpace)),
		Lines:      strings.Count(s, "\n") + 1,
	}
}

// codeUnits returns the UTF-16 encoding of s. Each byte that isn't valid UTF-8 becomes a lone
// low surrogate 0xDC00+byte, so different invalid bytes stay different and valid text can't
// produce the same unit.
func codeUnits(s string) []uint16 {
	ret := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			ret = append(ret, 0xDC00|uint16(s[i]))
			i++
			continue
		}
		ret = utf16.AppendRune(ret, r)
		i += size
	}
	return ret
}

// isSpace reports ASCII white space, the Unicode space separators, U+2028, U+2029 and the byte
// order mark. U+0085 is not white space.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00A0', '\u1680',
		'\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}
