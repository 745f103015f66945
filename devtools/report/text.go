package report

import (
	"fmt"
	"strings"

	"devtools.znkr.io/devtools/compare"
	"devtools.znkr.io/devtools/i18n"
	"devtools.znkr.io/devtools/inspect"
)

// CompareText returns the plain text report of a comparison.
func CompareText(cat *i18n.Catalog, res *compare.Result) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, cat.T("stringCompare.reportTitle"))
	fmt.Fprintf(&sb, "%s: %d\n", cat.T("stringCompare.differences"), res.Differences)
	fmt.Fprintf(&sb, "%s: %s\n", cat.T("stringCompare.stringA"), statsLine(cat, res.StatsA))
	fmt.Fprintf(&sb, "%s: %s\n", cat.T("stringCompare.stringB"), statsLine(cat, res.StatsB))
	fmt.Fprintln(&sb)
	fmt.Fprintln(&sb, cat.T("stringCompare.reportDiff"))
	sb.WriteString(res.Text())
	return sb.String()
}

func statsLine(cat *i18n.Catalog, s compare.Stats) string {
	return fmt.Sprintf("%d %s, %d %s, %d %s",
		s.Characters, cat.T("stringCompare.characters"),
		s.Words, cat.T("stringCompare.words"),
		s.Lines, cat.T("stringCompare.lines"))
}

// InspectText returns the plain text report of an inspection, one line per finding.
func InspectText(cat *i18n.Catalog, findings []inspect.Finding) string {
	if len(findings) == 0 {
		return cat.T("stringInspector.noResults")
	}
	lines := make([]string, 0, len(findings))
	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("%s %d: %s (%s: %d)",
			cat.T("stringInspector.position"), f.Index+1, Describe(cat, f), cat.T("stringInspector.code"), f.CodePoint))
	}
	return strings.Join(lines, "\n")
}

// Describe returns the localized description of a finding.
func Describe(cat *i18n.Catalog, f inspect.Finding) string {
	return cat.Sprintf(f.Description, f.DescriptionArgs...)
}
