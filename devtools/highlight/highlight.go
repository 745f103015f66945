// Package highlight renders diff listings as HTML.
package highlight

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"devtools.znkr.io/devtools/compare"
)

var style = map[chroma.TokenType]string{
	chroma.Keyword:           "hl-b",
	chroma.KeywordPseudo:     "",
	chroma.KeywordType:       "",
	chroma.NameClass:         "hl-b",
	chroma.NameEntity:        "hl-b",
	chroma.NameException:     "hl-b",
	chroma.NameNamespace:     "hl-b",
	chroma.NameTag:           "hl-b",
	chroma.NameBuiltin:       "hl-bl",
	chroma.LiteralString:     "hl-i",
	chroma.OperatorWord:      "hl-b",
	chroma.Comment:           "hl-ii",
	chroma.CommentPreproc:    "",
	chroma.GenericEmph:       "hl-i",
	chroma.GenericHeading:    "hl-b",
	chroma.GenericPrompt:     "hl-b",
	chroma.GenericStrong:     "hl-b",
	chroma.GenericSubheading: "hl-b",
}

type Option func(*highlighter)

// Lang selects the syntax of the compared texts by language name.
func Lang(lang string) Option {
	return func(o *highlighter) {
		o.lexer = lexers.Get(lang)
	}
}

// LangFromFilename selects the syntax of the compared texts by file name.
func LangFromFilename(filename string) Option {
	return func(o *highlighter) {
		o.lexer = lexers.Match(filename)
	}
}

// Edit is a single highlighted line of a diff listing. Line numbers are one-based and -1 if the
// line doesn't exist on that side.
type Edit struct {
	Op      compare.Op
	XLineNo int
	YLineNo int
	Content template.HTML
}

func (ed Edit) IsEqual() bool   { return ed.Op == compare.Equal }
func (ed Edit) IsRemoved() bool { return ed.Op == compare.Removed }
func (ed Edit) IsAdded() bool   { return ed.Op == compare.Added }

// Marker returns the prefix of the line in a textual diff listing.
func (ed Edit) Marker() string {
	switch ed.Op {
	case compare.Removed:
		return "-"
	case compare.Added:
		return "+"
	default:
		return ""
	}
}

// Diff highlights the lines of a diff listing. A removed line directly followed by an added line
// is treated as a changed pair; the characters that differ are wrapped in <mark> instead of being
// syntax highlighted.
func Diff(edits []compare.Edit, opts ...Option) ([]Edit, error) {
	hl := fromOptions(opts)

	ret := make([]Edit, 0, len(edits))
	s, t := 0, 0
	for i := 0; i < len(edits); i++ {
		edit := edits[i]
		if edit.Op == compare.Removed && i+1 < len(edits) && edits[i+1].Op == compare.Added {
			removed, added := compare.Inline(edit.Text, edits[i+1].Text)
			ret = append(ret,
				Edit{compare.Removed, s + 1, -1, marked(removed)},
				Edit{compare.Added, -1, t + 1, marked(added)},
			)
			s++
			t++
			i++
			continue
		}

		tokens, err := hl.tokens(edit.Text)
		if err != nil {
			return nil, err
		}
		ln := template.HTML(hl.highlight(tokens))
		switch edit.Op {
		case compare.Equal:
			ret = append(ret, Edit{edit.Op, s + 1, t + 1, ln})
			s++
			t++
		case compare.Removed:
			ret = append(ret, Edit{edit.Op, s + 1, -1, ln})
			s++
		case compare.Added:
			ret = append(ret, Edit{edit.Op, -1, t + 1, ln})
			t++
		}
	}
	return ret, nil
}

func marked(spans []compare.Span) template.HTML {
	var sb strings.Builder
	for _, span := range spans {
		if span.Changed {
			sb.WriteString("<mark>")
		}
		sb.WriteString(html.EscapeString(span.Text))
		if span.Changed {
			sb.WriteString("</mark>")
		}
	}
	return template.HTML(sb.String())
}

type highlighter struct {
	lexer chroma.Lexer
}

func fromOptions(opts []Option) *highlighter {
	hl := &highlighter{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(hl)
	}

	if hl.lexer == nil {
		hl.lexer = lexers.Fallback
	}
	hl.lexer = chroma.Coalesce(hl.lexer)
	return hl
}

func (hl *highlighter) highlight(line []chroma.Token) string {
	var sb strings.Builder
	for _, token := range line {
		value := strings.TrimSuffix(token.Value, "\n")
		if value == "" {
			continue
		}
		class := class(token.Type)
		if class != "" {
			fmt.Fprintf(&sb, "<span class=\"%s\">", class)
		}
		sb.WriteString(html.EscapeString(value))
		if class != "" {
			fmt.Fprintf(&sb, "</span>")
		}
	}
	return sb.String()
}

func (hl *highlighter) tokens(in string) ([]chroma.Token, error) {
	it, err := hl.lexer.Tokenise(nil, in)
	if err != nil {
		return nil, fmt.Errorf("creating iterator: %v", err)
	}
	return it.Tokens(), nil
}

func class(t chroma.TokenType) string {
	s, ok := style[t]
	if ok {
		return s
	}
	s, ok = style[t.SubCategory()]
	if ok {
		return s
	}
	s, ok = style[t.Category()]
	if ok {
		return s
	}
	return ""
}
