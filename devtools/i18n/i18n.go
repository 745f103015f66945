// Package i18n provides the localized messages of the tools.
//
// Messages are addressed by dotted keys, e.g. "stringInspector.characterTypes.tab". A key that
// can't be found is returned as is.
package i18n

import (
	"embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// Language identifies a supported language.
type Language string

const (
	English            Language = "en"
	TraditionalChinese Language = "zh-TW"
)

// Languages lists all supported languages, the first one is the default.
var Languages = []Language{English, TraditionalChinese}

// ParseLanguage returns the supported language with the given name.
func ParseLanguage(name string) (Language, error) {
	if name == "" {
		return English, nil
	}
	if lang := Language(name); slices.Contains(Languages, lang) {
		return lang, nil
	}
	return "", fmt.Errorf("unsupported language %q", name)
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.MustParse("zh-TW"),
})

// Match returns the best supported language for the given language tags or Accept-Language
// header values. If nothing matches, it returns the default language and false.
func Match(prefs ...string) (Language, bool) {
	for _, p := range prefs {
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		if _, i, conf := matcher.Match(tags...); conf != language.No {
			return Languages[i], true
		}
	}
	return Languages[0], false
}

// Catalog holds the messages of a single language.
type Catalog struct {
	lang     Language
	messages map[string]any
}

var loadCatalogs = sync.OnceValues(func() (map[Language]*Catalog, error) {
	ret := make(map[Language]*Catalog, len(Languages))
	for _, lang := range Languages {
		b, err := locales.ReadFile("locales/" + string(lang) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("reading messages for %s: %v", lang, err)
		}
		var messages map[string]any
		if err := yaml.Unmarshal(b, &messages); err != nil {
			return nil, fmt.Errorf("parsing messages for %s: %v", lang, err)
		}
		ret[lang] = &Catalog{lang: lang, messages: messages}
	}
	return ret, nil
})

// For returns the catalog for lang. Unsupported languages get the default catalog.
func For(lang Language) (*Catalog, error) {
	catalogs, err := loadCatalogs()
	if err != nil {
		return nil, err
	}
	if c, ok := catalogs[lang]; ok {
		return c, nil
	}
	return catalogs[Languages[0]], nil
}

// Language returns the language of the catalog.
func (c *Catalog) Language() Language { return c.lang }

// T returns the message for key.
func (c *Catalog) T(key string) string {
	var v any = c.messages
	for k := range strings.SplitSeq(key, ".") {
		m, ok := v.(map[string]any)
		if !ok {
			return key
		}
		v = m[k]
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return key
	}
	return s
}

// Sprintf formats the message for key with args.
func (c *Catalog) Sprintf(key string, args ...any) string {
	if len(args) == 0 {
		return c.T(key)
	}
	return fmt.Sprintf(c.T(key), args...)
}
