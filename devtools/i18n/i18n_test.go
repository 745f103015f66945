package i18n

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogT(t *testing.T) {
	tests := []struct {
		lang Language
		key  string
		want string
	}{
		{English, "stringInspector.characterTypes.tab", "Tab Character"},
		{English, "stringCompare.reportTitle", "String Comparison Results:"},
		{TraditionalChinese, "stringInspector.characterTypes.fullwidthSpace", "全形空格"},
		{TraditionalChinese, "common.copy", "複製"},
		{English, "stringInspector.characterTypes", "stringInspector.characterTypes"},
		{English, "does.not.exist", "does.not.exist"},
		{English, "", ""},
	}

	for _, tt := range tests {
		c, err := For(tt.lang)
		if err != nil {
			t.Fatalf("For(%q): %v", tt.lang, err)
		}
		if got := c.T(tt.key); got != tt.want {
			t.Errorf("[%s] T(%q) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}
}

func TestCatalogSprintf(t *testing.T) {
	c, err := For(English)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.Sprintf("stringInspector.characterTypes.controlWithCode", 7), "Control Character (ASCII 7)"; got != want {
		t.Errorf("Sprintf() = %q, want %q", got, want)
	}
	if got, want := c.Sprintf("stringInspector.characterTypes.space"), "Half-width Space"; got != want {
		t.Errorf("Sprintf() = %q, want %q", got, want)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	en, err := For(English)
	if err != nil {
		t.Fatal(err)
	}
	for _, lang := range Languages[1:] {
		c, err := For(lang)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(keys("", en.messages), keys("", c.messages)); diff != "" {
			t.Errorf("keys of %s differ from %s (-%s +%s):\n%s", lang, English, English, lang, diff)
		}
	}
}

func keys(prefix string, m map[string]any) map[string]bool {
	ret := make(map[string]bool)
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			for sk := range keys(prefix+k+".", sub) {
				ret[sk] = true
			}
			continue
		}
		ret[prefix+k] = true
	}
	return ret
}

func TestForUnsupportedLanguage(t *testing.T) {
	c, err := For("fr")
	if err != nil {
		t.Fatal(err)
	}
	if c.Language() != English {
		t.Errorf("For(\"fr\").Language() = %q, want %q", c.Language(), English)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		prefs   []string
		want    Language
		matched bool
	}{
		{nil, English, false},
		{[]string{""}, English, false},
		{[]string{"en-US"}, English, true},
		{[]string{"zh-TW"}, TraditionalChinese, true},
		{[]string{"zh-TW,zh;q=0.9,en;q=0.8"}, TraditionalChinese, true},
		{[]string{"fr-FR,en;q=0.5"}, English, true},
		{[]string{"de"}, English, false},
		{[]string{"fr", "zh-TW"}, TraditionalChinese, true},
	}

	for _, tt := range tests {
		got, matched := Match(tt.prefs...)
		if got != tt.want || matched != tt.matched {
			t.Errorf("Match(%q) = %q, %v, want %q, %v", tt.prefs, got, matched, tt.want, tt.matched)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	for _, lang := range Languages {
		got, err := ParseLanguage(string(lang))
		if err != nil || got != lang {
			t.Errorf("ParseLanguage(%q) = %q, %v", lang, got, err)
		}
	}
	if got, err := ParseLanguage(""); err != nil || got != English {
		t.Errorf("ParseLanguage(\"\") = %q, %v", got, err)
	}
	if _, err := ParseLanguage("klingon"); err == nil {
		t.Error("ParseLanguage(\"klingon\") succeeded, want error")
	}
}
