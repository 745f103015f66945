package compare

import "github.com/sergi/go-diff/diffmatchpatch"

// Span is a run of characters within a changed line.
type Span struct {
	Text    string `json:"text"`
	Changed bool   `json:"changed"`
}

// Inline compares a changed pair of lines character by character. It returns the spans of a, with
// the characters missing from b flagged, and the spans of b, with the characters missing from a
// flagged.
func Inline(a, b string) (removed, added []Span) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			removed = appendSpan(removed, d.Text, false)
			added = appendSpan(added, d.Text, false)
		case diffmatchpatch.DiffDelete:
			removed = appendSpan(removed, d.Text, true)
		case diffmatchpatch.DiffInsert:
			added = appendSpan(added, d.Text, true)
		}
	}
	return removed, added
}

func appendSpan(spans []Span, text string, changed bool) []Span {
	if text == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Changed == changed {
		spans[n-1].Text += text
		return spans
	}
	return append(spans, Span{text, changed})
}
