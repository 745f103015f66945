package inspect

import "unicode/utf16"

// Segment is a piece of the inspected text, either a run of ordinary characters or a single
// special character.
type Segment struct {
	Text    string   `json:"text"`
	Finding *Finding `json:"finding,omitempty"`
}

// Display returns the segment's text made visible: spaces, tabs and newlines are replaced with a
// glyph.
func (s Segment) Display() string {
	if s.Finding == nil {
		return s.Text
	}
	switch s.Finding.Category {
	case Space:
		return "␣"
	case Tab:
		return "→"
	case Newline:
		return "↵"
	}
	return s.Finding.Character
}

// Segments splits text into segments for inline highlighting. Findings must be the result of
// inspecting text.
func Segments(text string, findings []Finding) []Segment {
	units := utf16.Encode([]rune(text))

	var ret []Segment
	pos := 0
	for i := range findings {
		f := &findings[i]
		if f.Index < pos || f.Index >= len(units) {
			continue
		}
		if pos < f.Index {
			ret = append(ret, Segment{Text: decode(units[pos:f.Index])})
		}
		ret = append(ret, Segment{Text: decode(units[f.Index : f.Index+1]), Finding: f})
		pos = f.Index + 1
	}
	if pos < len(units) {
		ret = append(ret, Segment{Text: decode(units[pos:])})
	}
	return ret
}

func decode(units []uint16) string {
	return string(utf16.Decode(units))
}
