// Package inspect finds whitespace, control and full-width characters in a text.
//
// The text is inspected one UTF-16 code unit at a time. Characters outside the Basic Multilingual
// Plane are made up of two surrogate code units and are reported as two separate findings.
package inspect

import (
	"errors"
	"unicode/utf16"
)

// ErrEmptyInput is returned by Inspect for an empty text.
var ErrEmptyInput = errors.New("input empty")

// Category is the class of a special character.
type Category string

const (
	Space          Category = "space"
	FullwidthSpace Category = "fullwidth-space"
	Tab            Category = "tab"
	Newline        Category = "newline"
	CarriageReturn Category = "carriage-return"
	Fullwidth      Category = "fullwidth"
	Control        Category = "control"
)

// Categories lists all categories in the order they are matched.
var Categories = []Category{Space, FullwidthSpace, Tab, Newline, CarriageReturn, Fullwidth, Control}

var categoryKeys = map[Category]string{
	Space:          "stringInspector.characterTypes.space",
	FullwidthSpace: "stringInspector.characterTypes.fullwidthSpace",
	Tab:            "stringInspector.characterTypes.tab",
	Newline:        "stringInspector.characterTypes.newline",
	CarriageReturn: "stringInspector.characterTypes.carriageReturn",
	Fullwidth:      "stringInspector.characterTypes.fullwidth",
	Control:        "stringInspector.characterTypes.control",
}

// Key returns the message key of the category's label.
func (c Category) Key() string { return categoryKeys[c] }

// Finding is a single special character.
type Finding struct {
	Character       string   `json:"character"` // Character or a visible substitute
	Index           int      `json:"index"`     // Position in UTF-16 code units
	Category        Category `json:"category"`
	Description     string   `json:"description"` // Message key
	DescriptionArgs []any    `json:"descriptionArgs,omitempty"`
	CodePoint       uint16   `json:"codePoint"` // UTF-16 code unit
}

// controlKey describes a control character by its ASCII code.
const controlKey = "stringInspector.characterTypes.controlWithCode"

// Inspect returns a finding for every special character in text, ordered by position.
func Inspect(text string) ([]Finding, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	var findings []Finding
	for i, u := range utf16.Encode([]rune(text)) {
		r := match(u)
		if r == nil {
			continue
		}
		f := Finding{
			Character:   r.display(u),
			Index:       i,
			Category:    r.category,
			Description: r.category.Key(),
			CodePoint:   u,
		}
		if r.category == Control {
			f.Description = controlKey
			f.DescriptionArgs = []any{int(u)}
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// Count returns the number of findings per category.
func Count(findings []Finding) map[Category]int {
	ret := make(map[Category]int)
	for _, f := range findings {
		ret[f.Category]++
	}
	return ret
}
