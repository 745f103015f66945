// Package report renders the results of the string tools as text, Markdown, HTML or JSON.
//
// All labels are looked up in an [i18n.Catalog].
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"devtools.znkr.io/devtools/compare"
	"devtools.znkr.io/devtools/highlight"
	"devtools.znkr.io/devtools/i18n"
	"devtools.znkr.io/devtools/inspect"
)

// LocalizedFinding is a finding together with its localized description.
type LocalizedFinding struct {
	inspect.Finding
	Label string `json:"label"`
}

// Localize adds localized descriptions to findings.
func Localize(cat *i18n.Catalog, findings []inspect.Finding) []LocalizedFinding {
	ret := make([]LocalizedFinding, 0, len(findings))
	for _, f := range findings {
		ret = append(ret, LocalizedFinding{f, Describe(cat, f)})
	}
	return ret
}

// WriteCompare writes the report of a comparison in format f.
func WriteCompare(w io.Writer, f Format, cat *i18n.Catalog, res *compare.Result, opts ...highlight.Option) error {
	switch f {
	case Text:
		return write(w, CompareText(cat, res)+"\n")
	case Markdown:
		return write(w, CompareMarkdown(cat, res))
	case HTML:
		content, err := CompareHTML(cat, res, opts...)
		if err != nil {
			return err
		}
		return Page(w, PageData{
			Lang:    cat.Language(),
			Title:   cat.T("stringCompare.title"),
			Content: content,
		})
	case JSON:
		return writeJSON(w, res)
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

// WriteInspect writes the report of an inspection of text in format f.
func WriteInspect(w io.Writer, f Format, cat *i18n.Catalog, text string, findings []inspect.Finding) error {
	switch f {
	case Text:
		return write(w, InspectText(cat, findings)+"\n")
	case Markdown:
		return write(w, InspectMarkdown(cat, findings))
	case HTML:
		content, err := InspectHTML(cat, text, findings)
		if err != nil {
			return err
		}
		return Page(w, PageData{
			Lang:    cat.Language(),
			Title:   cat.T("stringInspector.title"),
			Content: content,
		})
	case JSON:
		return writeJSON(w, struct {
			Findings []LocalizedFinding       `json:"findings"`
			Counts   map[inspect.Category]int `json:"counts"`
		}{
			Findings: Localize(cat, findings),
			Counts:   inspect.Count(findings),
		})
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("writing report: %v", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %v", err)
	}
	return nil
}
