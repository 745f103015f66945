package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"devtools.znkr.io/devtools/compare"
	"devtools.znkr.io/devtools/i18n"
	"devtools.znkr.io/devtools/inspect"
)

func catalog(t *testing.T, lang i18n.Language) *i18n.Catalog {
	t.Helper()
	cat, err := i18n.For(lang)
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return cat
}

func mustCompare(t *testing.T, a, b string) *compare.Result {
	t.Helper()
	res, err := compare.Compare(a, b)
	if err != nil {
		t.Fatalf("Compare(%q, %q): %v", a, b, err)
	}
	return res
}

func mustInspect(t *testing.T, text string) []inspect.Finding {
	t.Helper()
	findings, err := inspect.Inspect(text)
	if err != nil {
		t.Fatalf("Inspect(%q): %v", text, err)
	}
	return findings
}

func TestCompareText(t *testing.T) {
	got := CompareText(catalog(t, i18n.English), mustCompare(t, "a\nb", "a\nc"))
	want := `String Comparison Results:
Differences: 1
String A: 3 characters, 2 words, 2 lines
String B: 3 characters, 2 words, 2 lines

Diff:
a
- b
+ c`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CompareText() mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectText(t *testing.T) {
	tests := []struct {
		name string
		lang i18n.Language
		in   string
		want string
	}{
		{
			name: "space_and_tab",
			lang: i18n.English,
			in:   "a b\tc",
			want: "Position 2: Half-width Space (Code: 32)\nPosition 4: Tab Character (Code: 9)",
		},
		{
			name: "control",
			lang: i18n.English,
			in:   "\a",
			want: "Position 1: Control Character (ASCII 7) (Code: 7)",
		},
		{
			name: "nothing_found",
			lang: i18n.English,
			in:   "hello",
			want: "No special characters found",
		},
		{
			name: "traditional_chinese",
			lang: i18n.TraditionalChinese,
			in:   "a b",
			want: "位置 2: 半形空格 (代碼: 32)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InspectText(catalog(t, tt.lang), mustInspect(t, tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("InspectText() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTable(t *testing.T) {
	got := table([]string{"A", "Name"}, []align{right, left}, [][]string{{"1", "全形"}, {"22", "a|b"}})
	want := "" +
		"|   A | Name |\n" +
		"| --: | ---- |\n" +
		"|   1 | 全形 |\n" +
		"|  22 | a\\|b |\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table() mismatch (-want +got):\n%s", diff)
	}
}

func TestFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "```"},
		{"has ``` fence", "````"},
		{"`````", "``````"},
	}
	for _, tt := range tests {
		if got := fence(tt.in); got != tt.want {
			t.Errorf("fence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompareMarkdown(t *testing.T) {
	got := CompareMarkdown(catalog(t, i18n.English), mustCompare(t, "a\nb", "a\nc"))
	for _, want := range []string{
		"# String Comparator\n",
		"| characters |        3 |        3 |\n",
		"**Differences:** 1 (The strings are different)\n",
		"```diff\na\n- b\n+ c\n```\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CompareMarkdown() = %q, want it to contain %q", got, want)
		}
	}
}

func TestInspectMarkdown(t *testing.T) {
	got := InspectMarkdown(catalog(t, i18n.English), mustInspect(t, "a b"))
	for _, want := range []string{
		"# String Inspector\n",
		"| Half-width Space |       1 |\n",
		"|        2 | Half-width Space |   32 | ` `       |\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("InspectMarkdown() = %q, want it to contain %q", got, want)
		}
	}
}

func TestWriteCompareHTML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCompare(&buf, HTML, catalog(t, i18n.English), mustCompare(t, "a\nb", "a\nc"))
	if err != nil {
		t.Fatalf("WriteCompare: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		`<html lang="en">`,
		`<title>String Comparator</title>`,
		`<table>`,
		`<tr class="del">`,
		`<mark>b</mark>`,
		`<mark>c</mark>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML report does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteInspectHTML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteInspect(&buf, HTML, catalog(t, i18n.TraditionalChinese), "a b", mustInspect(t, "a b"))
	if err != nil {
		t.Fatalf("WriteInspect: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		`<html lang="zh-TW">`,
		`<span class="special space" title="半形空格 (代碼: 32)">␣</span>`,
		`<td>2</td><td>半形空格</td><td>32</td>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML report does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteInspectJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteInspect(&buf, JSON, catalog(t, i18n.English), "a\tb", mustInspect(t, "a\tb"))
	if err != nil {
		t.Fatalf("WriteInspect: %v", err)
	}

	var got struct {
		Findings []struct {
			Character string `json:"character"`
			Index     int    `json:"index"`
			Category  string `json:"category"`
			CodePoint int    `json:"codePoint"`
			Label     string `json:"label"`
		} `json:"findings"`
		Counts map[string]int `json:"counts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if len(got.Findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(got.Findings))
	}
	f := got.Findings[0]
	if f.Character != "→" || f.Index != 1 || f.Category != "tab" || f.CodePoint != 9 || f.Label != "Tab Character" {
		t.Errorf("unexpected finding: %+v", f)
	}
	if diff := cmp.Diff(map[string]int{"tab": 1}, got.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCompareJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCompare(&buf, JSON, catalog(t, i18n.English), mustCompare(t, "abc", "abd")); err != nil {
		t.Fatalf("WriteCompare: %v", err)
	}
	var got struct {
		Differences int      `json:"differences"`
		Lines       []string `json:"diffLines"`
		Edits       []struct {
			Op string `json:"op"`
		} `json:"edits"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if got.Differences != 1 {
		t.Errorf("differences = %d, want 1", got.Differences)
	}
	if diff := cmp.Diff([]string{"- abc", "+ abd"}, got.Lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if len(got.Edits) != 2 || got.Edits[0].Op != "removed" {
		t.Errorf("unexpected edits: %+v", got.Edits)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("ParseFormat(\"pdf\") succeeded, want error")
	}
}
