package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"devtools.znkr.io/devtools/compare"
	"devtools.znkr.io/devtools/i18n"
	"devtools.znkr.io/devtools/inspect"
)

// CompareMarkdown returns the Markdown report of a comparison.
func CompareMarkdown(cat *i18n.Catalog, res *compare.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", cat.T("stringCompare.title"))
	sb.WriteString(compareSummary(cat, res))
	fmt.Fprintf(&sb, "\n## %s\n\n", cat.T("stringCompare.textDiff"))
	f := fence(res.Text())
	fmt.Fprintf(&sb, "%sdiff\n%s\n%s\n", f, res.Text(), f)
	return sb.String()
}

func compareSummary(cat *i18n.Catalog, res *compare.Result) string {
	var sb strings.Builder
	sb.WriteString(table(
		[]string{"", cat.T("stringCompare.stringA"), cat.T("stringCompare.stringB")},
		[]align{left, right, right},
		[][]string{
			{cat.T("stringCompare.characters"), strconv.Itoa(res.StatsA.Characters), strconv.Itoa(res.StatsB.Characters)},
			{cat.T("stringCompare.words"), strconv.Itoa(res.StatsA.Words), strconv.Itoa(res.StatsB.Words)},
			{cat.T("stringCompare.lines"), strconv.Itoa(res.StatsA.Lines), strconv.Itoa(res.StatsB.Lines)},
		},
	))
	verdict := cat.T("stringCompare.different")
	if res.Identical() {
		verdict = cat.T("stringCompare.identical")
	}
	fmt.Fprintf(&sb, "\n**%s:** %d (%s)\n", cat.T("stringCompare.differences"), res.Differences, verdict)
	return sb.String()
}

// InspectMarkdown returns the Markdown report of an inspection.
func InspectMarkdown(cat *i18n.Catalog, findings []inspect.Finding) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", cat.T("stringInspector.title"))
	if len(findings) == 0 {
		fmt.Fprintf(&sb, "%s\n", cat.T("stringInspector.noResults"))
		return sb.String()
	}
	sb.WriteString(inspectSummary(cat, findings))
	fmt.Fprintf(&sb, "\n## %s\n\n", cat.T("stringInspector.details"))
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{
			strconv.Itoa(f.Index + 1),
			Describe(cat, f),
			strconv.Itoa(int(f.CodePoint)),
			"`" + f.Character + "`",
		})
	}
	sb.WriteString(table(
		[]string{cat.T("stringInspector.position"), cat.T("stringInspector.category"), cat.T("stringInspector.code"), cat.T("stringInspector.character")},
		[]align{right, left, right, left},
		rows,
	))
	return sb.String()
}

func inspectSummary(cat *i18n.Catalog, findings []inspect.Finding) string {
	counts := inspect.Count(findings)
	var rows [][]string
	for _, c := range inspect.Categories {
		if n := counts[c]; n > 0 {
			rows = append(rows, []string{cat.T(c.Key()), strconv.Itoa(n)})
		}
	}
	return table(
		[]string{cat.T("stringInspector.category"), cat.T("stringInspector.results")},
		[]align{left, right},
		rows,
	)
}

// cond measures cell widths independently of the locale, so that ambiguous characters like "→"
// count as one column.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}()

type align int

const (
	left align = iota
	right
)

// table formats a Markdown table with cells padded to the display width of the widest cell in
// each column.
func table(header []string, aligns []align, rows [][]string) string {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], cond.StringWidth(escapeCell(cell)), 3)
		}
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		sb.WriteString("|")
		for i, cell := range row {
			cell = escapeCell(cell)
			pad := strings.Repeat(" ", widths[i]-cond.StringWidth(cell))
			if aligns[i] == right {
				fmt.Fprintf(&sb, " %s%s |", pad, cell)
			} else {
				fmt.Fprintf(&sb, " %s%s |", cell, pad)
			}
		}
		sb.WriteString("\n")
	}

	writeRow(header)
	sb.WriteString("|")
	for i, w := range widths {
		if aligns[i] == right {
			fmt.Fprintf(&sb, " %s: |", strings.Repeat("-", w-1))
		} else {
			fmt.Fprintf(&sb, " %s |", strings.Repeat("-", w))
		}
	}
	sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// fence returns a code fence that is longer than any run of backticks in s.
func fence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}

func renderMarkdown(data []byte) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
	)

	var buf bytes.Buffer
	if err := md.Convert(data, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %v", err)
	}

	return buf.Bytes(), nil
}
