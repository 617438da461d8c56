// Package i18n provides localized UI text for the arcade. Tables are
// embedded YAML keyed by "<namespace>.<key>".
package i18n

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Language is a display language.
type Language int

const (
	English Language = iota
	Chinese
)

func (l Language) String() string {
	switch l {
	case Chinese:
		return "zh"
	default:
		return "en"
	}
}

// ParseLanguage accepts short codes and locale strings such as "zh_CN.UTF-8".
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "en", s == "english", strings.HasPrefix(s, "en_"):
		return English, true
	case s == "zh", s == "chinese", strings.HasPrefix(s, "zh_"):
		return Chinese, true
	}
	return English, false
}

// Detect picks a language from the LANG value, defaulting to English.
func Detect(lang string) Language {
	if strings.HasPrefix(strings.ToLower(lang), "zh_") {
		return Chinese
	}
	return English
}

//go:embed locales/*.yaml
var localeFS embed.FS

var localeFiles = map[Language]string{
	English: "locales/en.yaml",
	Chinese: "locales/zh.yaml",
}

// Catalog holds the flattened translation tables of every language.
type Catalog struct {
	tables map[Language]map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded locale files.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := loadEmbedded()
		if err != nil {
			// Embedded tables are part of the binary; a parse failure
			// still leaves a working catalog that shows placeholders.
			c = NewCatalog(nil)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func loadEmbedded() (*Catalog, error) {
	raw := make(map[Language][]byte, len(localeFiles))
	for lang, path := range localeFiles {
		data, err := localeFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}
		raw[lang] = data
	}
	return ParseCatalog(raw)
}

// ParseCatalog builds a catalog from nested YAML documents per language.
func ParseCatalog(docs map[Language][]byte) (*Catalog, error) {
	tables := make(map[Language]map[string]string, len(docs))
	for lang, data := range docs {
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("i18n: parse %s table: %w", lang, err)
		}
		flat := make(map[string]string)
		flatten("", tree, flat)
		tables[lang] = flat
	}
	return NewCatalog(tables), nil
}

// NewCatalog wraps already flattened tables.
func NewCatalog(tables map[Language]map[string]string) *Catalog {
	if tables == nil {
		tables = make(map[Language]map[string]string)
	}
	return &Catalog{tables: tables}
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Lookup returns the text for key in lang, then in English, then a
// visible placeholder.
func (c *Catalog) Lookup(lang Language, key string) string {
	if s, ok := c.tables[lang][key]; ok {
		return s
	}
	if s, ok := c.tables[English][key]; ok {
		return s
	}
	return "Missing translation: " + key
}

// Translator resolves keys in one namespace for the current language.
// The zero value is not usable; build one with New.
type Translator struct {
	catalog   *Catalog
	namespace string
	lang      Language
}

// New returns a translator for namespace backed by the default catalog.
func New(namespace string, lang Language) Translator {
	return NewWithCatalog(Default(), namespace, lang)
}

// NewWithCatalog returns a translator backed by a custom catalog.
func NewWithCatalog(c *Catalog, namespace string, lang Language) Translator {
	return Translator{catalog: c, namespace: namespace, lang: lang}
}

// Language returns the current language.
func (t Translator) Language() Language {
	return t.lang
}

// SetLanguage switches the display language.
func (t *Translator) SetLanguage(lang Language) {
	t.lang = lang
}

// T looks up key inside the translator's namespace.
func (t Translator) T(key string) string {
	return t.catalog.Lookup(t.lang, t.namespace+"."+key)
}

// Common looks up key in the shared "common" namespace.
func (t Translator) Common(key string) string {
	return t.catalog.Lookup(t.lang, "common."+key)
}

// Lines splits a multi-line entry of the namespace into rows.
func (t Translator) Lines(key string) []string {
	return strings.Split(t.T(key), "\n")
}
