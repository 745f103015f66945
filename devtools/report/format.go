package report

import (
	"fmt"
	"slices"
)

// Format is an output format of a report.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
)

// Formats lists all formats.
var Formats = []Format{Text, Markdown, HTML, JSON}

// ParseFormat returns the format with the given name. The empty name selects Text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return Text, nil
	}
	if f := Format(name); slices.Contains(Formats, f) {
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q", name)
}

// MimeType returns the media type of the format.
func (f Format) MimeType() string {
	switch f {
	case Markdown:
		return "text/markdown;charset=utf-8"
	case HTML:
		return "text/html;charset=utf-8"
	case JSON:
		return "application/json"
	default:
		return "text/plain;charset=utf-8"
	}
}

// Ext returns the file name extension of the format.
func (f Format) Ext() string {
	switch f {
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	case JSON:
		return ".json"
	default:
		return ".txt"
	}
}
