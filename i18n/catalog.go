// Package i18n holds the translated user-facing messages and resolves which
// locale a caller wants. The active locale is always passed explicitly;
// nothing in this package keeps a current language.
package i18n

import (
	_ "embed"
	"fmt"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

type Locale string

const (
	German  Locale = "de"
	English Locale = "en"
)

// CookieName is the cookie the site stores the visitor's language in.
const CookieName = "lang"

//go:embed messages.yaml
var messagesYAML []byte

// Catalog maps locale -> message key -> text.
type Catalog struct {
	messages map[Locale]map[string]string
	fallback Locale
}

// Load parses the embedded catalog. fallback is used for unknown locales and
// missing keys.
func Load(fallback Locale) (*Catalog, error) {
	return Parse(messagesYAML, fallback)
}

// MustLoad is Load for package initialisation and tests.
func MustLoad(fallback Locale) *Catalog {
	c, err := Load(fallback)
	if err != nil {
		panic(err)
	}
	return c
}

func Parse(data []byte, fallback Locale) (*Catalog, error) {
	raw := map[string]map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}

	c := &Catalog{messages: make(map[Locale]map[string]string, len(raw)), fallback: fallback}
	for lang, msgs := range raw {
		c.messages[Locale(lang)] = msgs
	}
	if _, ok := c.messages[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %q missing from catalog", fallback)
	}
	return c, nil
}

// Supported reports whether the catalog has messages for l.
func (c *Catalog) Supported(l Locale) bool {
	_, ok := c.messages[l]
	return ok
}

// Fallback is the locale used when a request names none the catalog has.
func (c *Catalog) Fallback() Locale {
	return c.fallback
}

// Messages returns the message provider for l, or for the fallback locale
// when l is not supported.
func (c *Catalog) Messages(l Locale) Messages {
	if !c.Supported(l) {
		l = c.fallback
	}
	return Messages{catalog: c, locale: l}
}

// Messages resolves keys for one locale.
type Messages struct {
	catalog *Catalog
	locale  Locale
}

func (m Messages) Locale() Locale {
	return m.locale
}

// T returns the text for key. A key missing from the locale falls back to
// the catalog's fallback locale; a key missing everywhere is returned as is.
func (m Messages) T(key string) string {
	if m.catalog == nil {
		return key
	}
	if msg, ok := m.catalog.messages[m.locale][key]; ok {
		return msg
	}
	if msg, ok := m.catalog.messages[m.catalog.fallback][key]; ok {
		return msg
	}
	return key
}

// ParseLocale normalises tags like "de-CH" or "EN_us" to a base language.
func ParseLocale(tag string) Locale {
	tag = strings.TrimSpace(strings.ToLower(tag))
	if i := strings.IndexAny(tag, "-_;"); i >= 0 {
		tag = tag[:i]
	}
	return Locale(tag)
}

// FromRequest picks the locale for r: the lang cookie first, then the
// Accept-Language header in order of appearance, then def.
func (c *Catalog) FromRequest(r *http.Request, def Locale) Locale {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if l := ParseLocale(cookie.Value); c.Supported(l) {
			return l
		}
	}
	for _, part := range strings.Split(r.Header.Get("Accept-Language"), ",") {
		if l := ParseLocale(part); c.Supported(l) {
			return l
		}
	}
	if c.Supported(def) {
		return def
	}
	return c.fallback
}
