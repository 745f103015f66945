package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"devtools.znkr.io/devtools/compare"
	"devtools.znkr.io/devtools/highlight"
	"devtools.znkr.io/devtools/i18n"
	"devtools.znkr.io/devtools/inspect"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.html"))

// Link is an entry of the navigation.
type Link struct {
	Title string
	Href  string
}

// PageData is the input of Page.
type PageData struct {
	Lang        i18n.Language
	Title       string
	Description string
	Nav         []Link
	Content     template.HTML
}

// Page writes a complete HTML page.
func Page(w io.Writer, data PageData) error {
	if err := templates.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("rendering page: %v", err)
	}
	return nil
}

// CompareHTML returns the HTML fragment of a comparison.
func CompareHTML(cat *i18n.Catalog, res *compare.Result, opts ...highlight.Option) (template.HTML, error) {
	summary, err := renderMarkdown([]byte(compareSummary(cat, res)))
	if err != nil {
		return "", err
	}
	diff, err := highlight.Diff(res.Edits, opts...)
	if err != nil {
		return "", fmt.Errorf("highlighting diff: %v", err)
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, "compare", struct {
		Cat     *i18n.Catalog
		Summary template.HTML
		Diff    []highlight.Edit
		Text    string
	}{
		Cat:     cat,
		Summary: template.HTML(summary),
		Diff:    diff,
		Text:    res.Text(),
	})
	if err != nil {
		return "", fmt.Errorf("rendering comparison: %v", err)
	}
	return template.HTML(buf.String()), nil
}

type inspectData struct {
	Cat      *i18n.Catalog
	Summary  template.HTML
	Segments []inspect.Segment
	Findings []inspect.Finding
}

func (d inspectData) Describe(f inspect.Finding) string { return Describe(d.Cat, f) }

// InspectHTML returns the HTML fragment of an inspection of text.
func InspectHTML(cat *i18n.Catalog, text string, findings []inspect.Finding) (template.HTML, error) {
	summary, err := renderMarkdown([]byte(inspectSummary(cat, findings)))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, "inspect", inspectData{
		Cat:      cat,
		Summary:  template.HTML(summary),
		Segments: inspect.Segments(text, findings),
		Findings: findings,
	})
	if err != nil {
		return "", fmt.Errorf("rendering inspection: %v", err)
	}
	return template.HTML(buf.String()), nil
}
